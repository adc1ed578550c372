package item

import (
	"fmt"

	"github.com/ByLCY/exhibit/binding"
	"github.com/ByLCY/exhibit/dsl"
	"github.com/ByLCY/exhibit/layout"
)

// Step 记录一条语句执行后的结果，供 CLI 输出尺寸。
type Step struct {
	Line      int                    `json:"line"`
	Kind      string                 `json:"kind"`
	Slot      int                    `json:"slot,omitempty"`
	Committed layout.CommittedLayout `json:"committed"`
}

// Playback 是脚本回放的结果。Output 为脚本中最后一条 output 语句给出的路径。
type Playback struct {
	Steps  []Step `json:"steps"`
	Output string `json:"output,omitempty"`
}

// Play 按顺序在 s 上执行脚本，字符串中的 ${path} 先用 data 插值。
// 第一条被拒绝的语句终止回放，错误带上脚本行号并包装原始错误。
func Play(s *Session, script *dsl.Script, data any) (Playback, error) {
	var pb Playback
	if script == nil {
		return pb, nil
	}
	interpolate := func(t *dsl.Text) string {
		return t.Map(func(part string) string { return binding.Interpolate(part, data) })
	}

	for _, st := range script.Statements {
		step := Step{Line: st.Pos.Line, Kind: st.Kind()}
		var err error
		switch {
		case st.Exhibit != nil:
			s.SetText(interpolate(st.Exhibit))
		case st.Option != nil:
			step.Slot, err = s.AddOption(interpolate(st.Option))
		case st.Select != nil:
			var sel Selection
			sel, err = resolveSelection(s, st.Select, interpolate)
			if err == nil {
				step.Slot, err = s.AddSelection(sel)
			}
		case st.Reset:
			s.Reset()
		case st.Output != nil:
			pb.Output = interpolate(st.Output)
		}
		if err != nil {
			return pb, fmt.Errorf("第 %d 行 %s 失败: %w", st.Pos.Line, step.Kind, err)
		}
		step.Committed = s.Committed()
		pb.Steps = append(pb.Steps, step)
	}
	return pb, nil
}

func resolveSelection(s *Session, sel *dsl.Select, interpolate func(*dsl.Text) string) (Selection, error) {
	if sel.Span != nil {
		return Selection{
			Start: Position{Line: sel.Span.Line, Col: sel.Span.Start},
			End:   Position{Line: sel.Span.Line, Col: sel.Span.End},
		}, nil
	}
	needle := interpolate(sel.Match.Text)
	found, ok := s.Find(needle, sel.Match.Nth())
	if !ok {
		return Selection{}, &layout.Error{Kind: layout.KindNoSelection}
	}
	return found, nil
}
