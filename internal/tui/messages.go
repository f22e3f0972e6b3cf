package tui

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
