package layout

import (
	"errors"
	"fmt"
)

// Kind 区分调用方需要分别处理的拒绝原因。
type Kind int

const (
	KindUnknown Kind = iota
	KindLineTooWide
	KindTooManyLines
	KindNoDestinationSpecified
	KindAllOptionSlotsUsed
	KindNoSelection
	KindOptionTooTall
	KindOptionLineTooLong
	KindProposedWidthExceeded
	KindProposedHeightExceeded
	KindEmptyOption
)

var kindNames = map[Kind]string{
	KindLineTooWide:            "LineTooWide",
	KindTooManyLines:           "TooManyLines",
	KindNoDestinationSpecified: "NoDestinationSpecified",
	KindAllOptionSlotsUsed:     "AllOptionSlotsUsed",
	KindNoSelection:            "NoSelection",
	KindOptionTooTall:          "OptionTooTall",
	KindOptionLineTooLong:      "OptionLineTooLong",
	KindProposedWidthExceeded:  "ProposedWidthExceeded",
	KindProposedHeightExceeded: "ProposedHeightExceeded",
	KindEmptyOption:            "EmptyOption",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var kindMessages = map[Kind]string{
	KindLineTooWide:            "一行或多行文本过宽（检查是否有自动换行的文本）",
	KindTooManyLines:           "文本行数过多",
	KindNoDestinationSpecified: "未指定图片输出路径",
	KindAllOptionSlotsUsed:     "所有选项位置均已使用",
	KindNoSelection:            "未选择任何文本",
	KindOptionTooTall:          "选项超过允许的行数",
	KindOptionLineTooLong:      "选项中有一行超过允许的字符数",
	KindProposedWidthExceeded:  "该操作会使题目总宽度超出限制",
	KindProposedHeightExceeded: "该操作会使题干与选项的总高度超出限制",
	KindEmptyOption:            "选项文本为空",
}

// Error 是布局校验的拒绝结果。Limit/Actual 为 0 时表示不适用。
type Error struct {
	Kind   Kind
	Limit  int
	Actual int
	Line   int // 1-based，0 表示不针对具体行
}

func (e *Error) Error() string {
	msg := kindMessages[e.Kind]
	if msg == "" {
		msg = "布局被拒绝"
	}
	switch {
	case e.Line > 0 && e.Limit > 0:
		return fmt.Sprintf("%s: %s（第 %d 行，%d > %d）", e.Kind, msg, e.Line, e.Actual, e.Limit)
	case e.Limit > 0:
		return fmt.Sprintf("%s: %s（%d > %d）", e.Kind, msg, e.Actual, e.Limit)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
}

// Is 让 errors.Is 按 Kind 匹配哨兵错误。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// 哨兵错误，仅用于 errors.Is 比较。
var (
	ErrLineTooWide            = &Error{Kind: KindLineTooWide}
	ErrTooManyLines           = &Error{Kind: KindTooManyLines}
	ErrNoDestinationSpecified = &Error{Kind: KindNoDestinationSpecified}
	ErrAllOptionSlotsUsed     = &Error{Kind: KindAllOptionSlotsUsed}
	ErrNoSelection            = &Error{Kind: KindNoSelection}
	ErrOptionTooTall          = &Error{Kind: KindOptionTooTall}
	ErrOptionLineTooLong      = &Error{Kind: KindOptionLineTooLong}
	ErrProposedWidthExceeded  = &Error{Kind: KindProposedWidthExceeded}
	ErrProposedHeightExceeded = &Error{Kind: KindProposedHeightExceeded}
	ErrEmptyOption            = &Error{Kind: KindEmptyOption}
)

// KindOf 返回 err 链上的第一个布局错误类型。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
