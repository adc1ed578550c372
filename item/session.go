package item

import (
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/exhibit/layout"
)

// Position 是题干中的一个光标位置：Line 从 1 开始，Col 为该行内的 rune 偏移。
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Selection 是题干中 [Start, End) 之间的文本，可跨行。
type Selection struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Empty 报告选区是否为空。
func (s Selection) Empty() bool { return s.Start == s.End }

func (s Selection) ordered() Selection {
	if s.End.Line < s.Start.Line || (s.End.Line == s.Start.Line && s.End.Col < s.Start.Col) {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// Session 是一道拖放题的编辑状态：题干、按位置登记的选项以及最近一次提交的布局。
// 每个增加选项的操作都先计算提案并通过尺寸检查，失败时状态保持不变。
type Session struct {
	metrics   layout.Metrics
	limits    layout.Limits
	text      string
	committed layout.CommittedLayout
	options   *layout.OptionRegistry
}

// NewSession 创建空会话。
func NewSession(m layout.Metrics, l layout.Limits) *Session {
	return &Session{
		metrics: m,
		limits:  l,
		options: layout.NewOptionRegistry(l.MaxOptions),
	}
}

// Text 返回当前题干（换行已规范化为 LF）。
func (s *Session) Text() string { return s.text }

// SetText 替换题干文本。已登记的选项与已提交的布局不受影响。
func (s *Session) SetText(text string) {
	s.text = strings.Join(layout.SplitLines(text), "\n")
}

// Committed 返回最近一次提交的布局。
func (s *Session) Committed() layout.CommittedLayout { return s.committed }

// Options 按位置顺序返回已登记的选项。
func (s *Session) Options() []layout.SlotOption { return s.options.Options() }

// OptionCount 返回已登记的选项数。
func (s *Session) OptionCount() int { return s.options.Len() }

// Propose 计算加入 candidate（insertionLine 非 0 时同时在该行新增目标）之后的布局，
// 不修改会话。
func (s *Session) Propose(candidate layout.Option, insertionLine int) layout.Proposal {
	return layout.ProposeLayout(s.metrics, s.limits, layout.ProposalRequest{
		Text:                s.text,
		Candidate:           candidate,
		InsertionLine:       insertionLine,
		OptionsMaxLines:     s.options.MaxLines(),
		OptionsMaxLineWidth: s.options.MaxLineWidth(),
		OptionCount:         s.options.Len(),
	})
}

// Commit 检查提案的总宽度与总高度，通过后整体提交。
func (s *Session) Commit(p layout.Proposal) error {
	return s.limits.Admit(&s.committed, p)
}

// AddOption 加入一个手动选项（干扰项，不新增目标），返回其位置（1-based）。
func (s *Session) AddOption(text string) (int, error) {
	candidate, err := layout.NewOption(text)
	if err != nil {
		return 0, err
	}
	if s.options.Full() {
		return 0, s.slotsUsed()
	}
	if err := s.limits.CheckOption(candidate); err != nil {
		return 0, err
	}
	if err := s.Commit(s.Propose(candidate, 0)); err != nil {
		return 0, err
	}
	return s.options.Assign(candidate)
}

// AddSelection 把选中的文本变为选项：题干中的选区被替换为目标占位符，
// 选项记住目标所在行。返回选项位置（1-based）。
func (s *Session) AddSelection(sel Selection) (int, error) {
	sel = sel.ordered()
	if sel.Empty() {
		return 0, &layout.Error{Kind: layout.KindNoSelection}
	}
	if s.options.Full() {
		return 0, s.slotsUsed()
	}
	if err := s.limits.CheckExhibit(layout.LiteralBlock(s.text)); err != nil {
		return 0, err
	}
	lines := layout.SplitLines(s.text)
	start, end, ok := byteRange(lines, sel)
	if !ok {
		return 0, &layout.Error{Kind: layout.KindNoSelection, Line: sel.Start.Line}
	}
	joined := strings.Join(lines, "\n")
	candidate, err := layout.NewOption(joined[start:end])
	if err != nil {
		return 0, err
	}
	if err := s.limits.CheckOption(candidate); err != nil {
		return 0, err
	}
	if err := s.Commit(s.Propose(candidate, sel.Start.Line)); err != nil {
		return 0, err
	}

	candidate.Target = sel.Start.Line
	slot, err := s.options.Assign(candidate)
	if err != nil {
		return 0, err
	}
	s.text = joined[:start] + layout.TargetReplacement + joined[end:]
	return slot, nil
}

// Find 返回题干中第 n 次（从 1 开始）出现 needle 的选区。
func (s *Session) Find(needle string, n int) (Selection, bool) {
	return FindSelection(s.text, needle, n)
}

// Reset 清空所有选项与已提交的布局，题干保持不变。
func (s *Session) Reset() {
	s.options.Reset()
	s.committed.Clear()
}

// Layout 计算出图时的布局：占位符绑定到最宽选项，不新增目标或选项。
func (s *Session) Layout() layout.Proposal {
	return layout.FinalLayout(s.metrics, s.limits, s.text,
		s.options.MaxLines(), s.options.MaxLineWidth(), s.options.Len())
}

// Generate 规划题干与每个选项的图片并提交最终布局。
// 题干图片写到 dest，选项图片按 OptionPath 命名。
func (s *Session) Generate(dest string) ([]Artifact, error) {
	if strings.TrimSpace(dest) == "" {
		return nil, &layout.Error{Kind: layout.KindNoDestinationSpecified}
	}
	p := s.Layout()
	if err := s.Commit(p); err != nil {
		return nil, err
	}

	exhibit := layout.VariableFrame(s.text, p.Exhibit.Width, p.Exhibit.Height, p.OptionLines, s.metrics)
	if s.options.Len() > 0 {
		exhibit = exhibit.WithFilledMarkers(p.TargetWidth)
	}
	artifacts := []Artifact{{Path: dest, Frame: exhibit}}
	for _, o := range s.options.Options() {
		artifacts = append(artifacts, Artifact{
			Path:  OptionPath(dest, o.Slot),
			Slot:  o.Slot,
			Frame: layout.FixedFrame(o.Text, p.Options.Box.Width, p.Options.Box.Height, s.metrics),
		})
	}
	return artifacts, nil
}

// Report 汇总当前提交的布局、选项以及 artifacts 的画布，用于调试 JSON。
func (s *Session) Report(artifacts []Artifact) *layout.Report {
	rep := &layout.Report{
		Committed: s.committed,
		Options:   s.options.Options(),
	}
	for _, a := range artifacts {
		rep.Frames = append(rep.Frames, layout.NamedFrame{Path: a.Path, Frame: a.Frame})
	}
	return rep
}

func (s *Session) slotsUsed() error {
	return &layout.Error{Kind: layout.KindAllOptionSlotsUsed, Limit: s.options.Cap(), Actual: s.options.Cap() + 1}
}

// FindSelection 在 text 中查找第 n 次出现的 needle。
func FindSelection(text, needle string, n int) (Selection, bool) {
	if needle == "" || n < 1 {
		return Selection{}, false
	}
	joined := strings.Join(layout.SplitLines(text), "\n")
	needle = strings.ReplaceAll(needle, "\r\n", "\n")
	offset := 0
	for i := 1; ; i++ {
		idx := strings.Index(joined[offset:], needle)
		if idx < 0 {
			return Selection{}, false
		}
		start := offset + idx
		if i == n {
			return Selection{
				Start: positionAt(joined, start),
				End:   positionAt(joined, start+len(needle)),
			}, true
		}
		offset = start + len(needle)
	}
}

// positionAt 把字节偏移转换为行列位置。
func positionAt(joined string, offset int) Position {
	before := joined[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{Line: line, Col: utf8.RuneCountInString(before[lineStart:])}
}

// byteRange 把选区转换为 strings.Join(lines, "\n") 中的字节区间。
// 行号越界时返回 false；列号超过行尾时截到行尾。
func byteRange(lines []string, sel Selection) (int, int, bool) {
	start, ok := byteOffset(lines, sel.Start)
	if !ok {
		return 0, 0, false
	}
	end, ok := byteOffset(lines, sel.End)
	if !ok || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func byteOffset(lines []string, p Position) (int, bool) {
	if p.Line < 1 || p.Line > len(lines) || p.Col < 0 {
		return 0, false
	}
	offset := 0
	for _, line := range lines[:p.Line-1] {
		offset += len(line) + 1
	}
	line := lines[p.Line-1]
	col := 0
	for i := range line {
		if col == p.Col {
			return offset + i, true
		}
		col++
	}
	return offset + len(line), true
}
