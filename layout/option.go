package layout

import "strings"

// Option 是可拖放选项的文本及其测量结果。
type Option struct {
	Text         string `json:"text"`
	Lines        int    `json:"lines"`
	MaxLineWidth int    `json:"maxLineWidth"`
	Target       int    `json:"target,omitempty"` // 目标所在的题干行（1-based），0 表示干扰项
}

// NewOption 测量选项文本。空文本返回 ErrEmptyOption；行数与行宽由 Limits.CheckOption 校验。
func NewOption(text string) (Option, error) {
	block := LiteralBlock(text)
	if block.LineCount() == 0 || strings.TrimSpace(text) == "" {
		return Option{}, &Error{Kind: KindEmptyOption}
	}
	return Option{
		Text:         block.Raw,
		Lines:        block.LineCount(),
		MaxLineWidth: block.MaxLineLength(),
	}, nil
}

// SlotOption 是登记表中某个位置上的选项，Slot 为 1-based。
type SlotOption struct {
	Slot int `json:"slot"`
	Option
}

// OptionRegistry 按位置保存最多 capacity 个选项，总是占用第一个空位，
// 只能追加，直到 Reset。
type OptionRegistry struct {
	slots []*Option
}

// NewOptionRegistry 创建容量为 capacity 的登记表。
func NewOptionRegistry(capacity int) *OptionRegistry {
	if capacity < 0 {
		capacity = 0
	}
	return &OptionRegistry{slots: make([]*Option, capacity)}
}

// Cap 返回位置总数。
func (r *OptionRegistry) Cap() int { return len(r.slots) }

// Len 返回已占用的位置数。
func (r *OptionRegistry) Len() int {
	n := 0
	for _, o := range r.slots {
		if o != nil {
			n++
		}
	}
	return n
}

// FirstFree 返回第一个空位（1-based）。
func (r *OptionRegistry) FirstFree() (int, bool) {
	for i, o := range r.slots {
		if o == nil {
			return i + 1, true
		}
	}
	return 0, false
}

// Full 报告是否已无空位。
func (r *OptionRegistry) Full() bool {
	_, ok := r.FirstFree()
	return !ok
}

// Assign 把选项放入第一个空位并返回其位置；没有空位时返回 ErrAllOptionSlotsUsed，
// 登记表保持不变。
func (r *OptionRegistry) Assign(o Option) (int, error) {
	slot, ok := r.FirstFree()
	if !ok {
		return 0, &Error{Kind: KindAllOptionSlotsUsed, Limit: r.Cap(), Actual: r.Cap() + 1}
	}
	stored := o
	r.slots[slot-1] = &stored
	return slot, nil
}

// Get 返回指定位置（1-based）的选项。
func (r *OptionRegistry) Get(slot int) (Option, bool) {
	if slot < 1 || slot > len(r.slots) || r.slots[slot-1] == nil {
		return Option{}, false
	}
	return *r.slots[slot-1], true
}

// Options 按位置顺序返回所有已占用的选项。
func (r *OptionRegistry) Options() []SlotOption {
	out := make([]SlotOption, 0, len(r.slots))
	for i, o := range r.slots {
		if o != nil {
			out = append(out, SlotOption{Slot: i + 1, Option: *o})
		}
	}
	return out
}

// MaxLines 返回所有选项中最多的行数。
func (r *OptionRegistry) MaxLines() int {
	n := 0
	for _, o := range r.slots {
		if o != nil && o.Lines > n {
			n = o.Lines
		}
	}
	return n
}

// MaxLineWidth 返回所有选项中最长一行的字符数。
func (r *OptionRegistry) MaxLineWidth() int {
	n := 0
	for _, o := range r.slots {
		if o != nil && o.MaxLineWidth > n {
			n = o.MaxLineWidth
		}
	}
	return n
}

// Reset 清空所有位置。
func (r *OptionRegistry) Reset() {
	for i := range r.slots {
		r.slots[i] = nil
	}
}
