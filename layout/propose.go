package layout

// ProposalRequest 描述一次假设性变更以及当前已提交的选项状态。
type ProposalRequest struct {
	Text                string // 当前题干文本
	Candidate           Option // 将要加入的选项
	InsertionLine       int    // 新目标所在行（1-based），0 表示不新增目标
	OptionsMaxLines     int    // 已有选项的最大行数
	OptionsMaxLineWidth int    // 已有选项的最大行宽（字符）
	OptionCount         int    // 已有选项个数
}

// ProposeLayout 计算变更之后题干与选项区域的像素尺寸。纯函数，不修改任何状态。
func ProposeLayout(m Metrics, l Limits, req ProposalRequest) Proposal {
	optionLines := max(req.Candidate.Lines, req.OptionsMaxLines)
	targetWidth := req.Candidate.MaxLineWidth

	exhibit := ExhibitSize(m, req.Text, targetWidth, optionLines, req.InsertionLine)

	// 所有选项框统一大小，取迄今为止最宽、最高的选项。
	box := Size{
		Width:  m.TextWidth(max(req.Candidate.MaxLineWidth, req.OptionsMaxLineWidth)),
		Height: m.TextHeight(optionLines),
	}
	area := PackOptions(m, l.DnDMaxWidth, req.OptionCount+1, box)

	return Proposal{
		Exhibit: exhibit,
		Options: area,
		Total: Size{
			Width:  max(area.Size.Width, exhibit.Width),
			Height: area.Size.Height + exhibit.Height,
		},
		OptionLines: optionLines,
		TargetWidth: targetWidth,
	}
}

// ExhibitSize 计算题干图片尺寸。已有占位符都绑定到宽度 targetWidth；
// insertionLine 非 0 时该行再多一个绑定的占位符，且多预留一个选项行。
// 每个含目标的行按 optionLines 行高度预留，并在上下各加 P+3 的间隔。
func ExhibitSize(m Metrics, text string, targetWidth, optionLines, insertionLine int) Size {
	lines := Tokenize(text)
	maxLength := 0
	withOptions := 0
	for _, line := range lines {
		k := line.MarkerCount()
		bound := k
		if insertionLine > 0 && line.Index == insertionLine-1 {
			bound++
		}
		width := line.Length
		if bound > 0 {
			// 新增的目标尚未写入文本，按额外绑定一个占位符计入：
			// (raw − 5k) + (k+1)·m。
			width = line.EffectiveWidth(k, targetWidth) + (bound-k)*targetWidth
		}
		maxLength = max(maxLength, width)
		if k > 0 {
			withOptions++
		}
	}
	if insertionLine > 0 {
		withOptions++
	}

	plain := len(lines) - withOptions
	reserved := optionLines*m.LineHeight + 2*m.SeparatorGap()
	return Size{
		Width:  m.TextWidth(maxLength),
		Height: plain*m.LineHeight + withOptions*reserved + 2*m.Padding,
	}
}

// FinalLayout 计算出图时的布局：每个占位符绑定到最宽选项的宽度，
// 不新增目标也不新增选项。还没有选项时占位符保持字面宽度，每个目标至少预留一行。
func FinalLayout(m Metrics, l Limits, text string, optionsMaxLines, optionsMaxLineWidth, optionCount int) Proposal {
	targetWidth := optionsMaxLineWidth
	if optionCount == 0 || targetWidth == 0 {
		targetWidth = MarkerLen
	}
	optionLines := max(optionsMaxLines, 1)

	exhibit := ExhibitSize(m, text, targetWidth, optionLines, 0)
	box := Size{
		Width:  m.TextWidth(optionsMaxLineWidth),
		Height: m.TextHeight(optionLines),
	}
	area := PackOptions(m, l.DnDMaxWidth, optionCount, box)
	return Proposal{
		Exhibit: exhibit,
		Options: area,
		Total: Size{
			Width:  max(area.Size.Width, exhibit.Width),
			Height: area.Size.Height + exhibit.Height,
		},
		OptionLines: optionLines,
		TargetWidth: targetWidth,
	}
}
