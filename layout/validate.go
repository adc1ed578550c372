package layout

import "unicode/utf8"

// CheckExhibit 校验题干行宽与行数，先检查行宽。
func (l Limits) CheckExhibit(block TextBlock) error {
	for i, line := range block.Lines {
		if n := utf8.RuneCountInString(line); n > l.ExhibitMaxChars {
			return &Error{Kind: KindLineTooWide, Limit: l.ExhibitMaxChars, Actual: n, Line: i + 1}
		}
	}
	if n := block.LineCount(); n > l.ExhibitMaxLines {
		return &Error{Kind: KindTooManyLines, Limit: l.ExhibitMaxLines, Actual: n}
	}
	return nil
}

// CheckOption 校验选项的行数与行宽，先检查行数。
func (l Limits) CheckOption(o Option) error {
	if o.Lines == 0 {
		return &Error{Kind: KindEmptyOption}
	}
	if o.Lines > l.OptionMaxLines {
		return &Error{Kind: KindOptionTooTall, Limit: l.OptionMaxLines, Actual: o.Lines}
	}
	for i, line := range SplitLines(o.Text) {
		if n := utf8.RuneCountInString(line); n > l.OptionMaxChars {
			return &Error{Kind: KindOptionLineTooLong, Limit: l.OptionMaxChars, Actual: n, Line: i + 1}
		}
	}
	return nil
}

// CheckProposal 校验拖放题的总宽度与总高度，先检查宽度。
func (l Limits) CheckProposal(p Proposal) error {
	if p.Total.Width > l.DnDMaxWidth {
		return &Error{Kind: KindProposedWidthExceeded, Limit: l.DnDMaxWidth, Actual: p.Total.Width}
	}
	if p.Total.Height > l.DnDMaxHeight {
		return &Error{Kind: KindProposedHeightExceeded, Limit: l.DnDMaxHeight, Actual: p.Total.Height}
	}
	return nil
}

// Admit 完整运行 CheckProposal，通过后才把 p 整体写入 c。
// 失败时 c 保持不变。
func (l Limits) Admit(c *CommittedLayout, p Proposal) error {
	if err := l.CheckProposal(p); err != nil {
		return err
	}
	c.Commit(p)
	return nil
}
