package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength = 100
	MaxTextLength  = 2000
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Title struct {
	text string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{text: t}, nil
}

func (t Title) String() string { return t.text }

type Text struct {
	text string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if utf8.RuneCountInString(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: t}, nil
}

func (t Text) String() string { return t.text }
