package battle

// Main menu buttons.
const (
	ButtonFight = "FIGHT"
	ButtonAct   = "ACT"
	ButtonItem  = "ITEM"
	ButtonMercy = "MERCY"
)

// ACT submenu entries.
const (
	ActCheck = "Check"
	ActTalk  = "Talk"
)

var mainButtons = []string{ButtonFight, ButtonAct, ButtonItem, ButtonMercy}

type submenuKind int

const (
	submenuNone submenuKind = iota
	submenuAct
	submenuItem
)

// Menu is the action selector shown on the player's turn.
type Menu struct {
	Selected int

	kind        submenuKind
	items       []string
	subSelected int
}

// Buttons returns the main menu labels.
func (m *Menu) Buttons() []string {
	return mainButtons
}

// SelectedButton returns the highlighted main menu label.
func (m *Menu) SelectedButton() string {
	return mainButtons[m.Selected]
}

// SubmenuActive reports whether a submenu is open.
func (m *Menu) SubmenuActive() bool {
	return m.kind != submenuNone
}

// Submenu returns the open submenu's entries and highlighted index.
func (m *Menu) Submenu() ([]string, int) {
	return m.items, m.subSelected
}

func (m *Menu) open(kind submenuKind, items []string) {
	m.kind = kind
	m.items = items
	m.subSelected = 0
}

func (m *Menu) close() {
	m.kind = submenuNone
	m.items = nil
	m.subSelected = 0
}

func (m *Menu) moveMain(delta int) {
	n := len(mainButtons)
	m.Selected = ((m.Selected+delta)%n + n) % n
}

func (m *Menu) moveSub(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.subSelected = ((m.subSelected+delta)%n + n) % n
}
