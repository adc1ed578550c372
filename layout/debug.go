package layout

import (
	"encoding/json"
	"os"
)

// Report 汇总一次出图的已提交布局与各图片的画布规划。
type Report struct {
	Committed CommittedLayout `json:"committed"`
	Options   []SlotOption    `json:"options"`
	Frames    []NamedFrame    `json:"frames"`
}

// NamedFrame 记录输出文件名与对应的画布。
type NamedFrame struct {
	Path  string `json:"path"`
	Frame Frame  `json:"frame"`
}

// MarshalReport 以缩进 JSON 编码报告。
func MarshalReport(rep *Report) ([]byte, error) {
	return json.MarshalIndent(rep, "", "  ")
}

// WriteDebugJSON 将布局报告输出为 JSON，便于调试或可视化。
func WriteDebugJSON(rep *Report, path string) error {
	if rep == nil {
		return nil
	}
	data, err := MarshalReport(rep)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
