package battle

import (
	"heartdodge/internal/player"
)

// ResultKind says what a command did.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultFightStart
	ResultFightCancel
	ResultFightDamage
	ResultEnemyKilled
	ResultActMenu
	ResultCheck
	ResultTalk
	ResultItemMenu
	ResultNoItems
	ResultItemUsed
	ResultSpare
	ResultMercyFail
	ResultBack
)

var resultNames = map[ResultKind]string{
	ResultNone:        "none",
	ResultFightStart:  "fight_start",
	ResultFightCancel: "fight_cancel",
	ResultFightDamage: "fight_damage",
	ResultEnemyKilled: "enemy_killed",
	ResultActMenu:     "act_menu",
	ResultCheck:       "check",
	ResultTalk:        "talk",
	ResultItemMenu:    "item_menu",
	ResultNoItems:     "no_items",
	ResultItemUsed:    "item_used",
	ResultSpare:       "spare",
	ResultMercyFail:   "mercy_fail",
	ResultBack:        "back",
}

func (k ResultKind) String() string {
	if name, ok := resultNames[k]; ok {
		return name
	}
	return "unknown"
}

// Result is the outcome of one command, for the runner to show as a message.
type Result struct {
	Kind   ResultKind
	Damage int
	Text   string
	Item   player.Item
	Healed int
}

// HandleCommand applies a discrete input. Commands outside the menu and the
// fight bar are ignored.
func (b *Battle) HandleCommand(cmd Command) Result {
	switch b.mode {
	case ModeFightAttack:
		switch cmd {
		case CmdConfirm:
			return b.resolveFight()
		case CmdCancel:
			b.setMode(ModeMenu)
			return Result{Kind: ResultFightCancel}
		}
	case ModeMenu:
		if b.Menu.SubmenuActive() {
			return b.handleSubmenu(cmd)
		}
		return b.handleMainMenu(cmd)
	}
	return Result{}
}

func (b *Battle) handleMainMenu(cmd Command) Result {
	switch cmd {
	case CmdLeft:
		b.Menu.moveMain(-1)
	case CmdRight:
		b.Menu.moveMain(1)
	case CmdConfirm:
		return b.selectButton(b.Menu.SelectedButton())
	}
	return Result{}
}

func (b *Battle) selectButton(button string) Result {
	switch button {
	case ButtonFight:
		b.startFight()
		return Result{Kind: ResultFightStart}
	case ButtonAct:
		b.Menu.open(submenuAct, []string{ActCheck, ActTalk})
		return Result{Kind: ResultActMenu}
	case ButtonItem:
		if !b.Heart.HasItems() {
			return Result{Kind: ResultNoItems}
		}
		names := make([]string, len(b.Heart.Items))
		for i, it := range b.Heart.Items {
			names[i] = it.Name
		}
		b.Menu.open(submenuItem, names)
		return Result{Kind: ResultItemMenu}
	case ButtonMercy:
		if b.Enemy.Sparable {
			b.finish(OutcomeSpared)
			return Result{Kind: ResultSpare}
		}
		return Result{Kind: ResultMercyFail}
	}
	return Result{}
}

func (b *Battle) handleSubmenu(cmd Command) Result {
	items, selected := b.Menu.Submenu()
	if len(items) == 0 {
		if cmd == CmdConfirm || cmd == CmdCancel {
			b.Menu.close()
			return Result{Kind: ResultBack}
		}
		return Result{}
	}

	switch cmd {
	case CmdUp:
		b.Menu.moveSub(-1)
	case CmdDown:
		b.Menu.moveSub(1)
	case CmdCancel:
		b.Menu.close()
		return Result{Kind: ResultBack}
	case CmdConfirm:
		kind := b.Menu.kind
		entry := items[selected]
		b.Menu.close()
		if kind == submenuItem {
			return b.useItem(selected)
		}
		return b.selectAct(entry)
	}
	return Result{}
}

func (b *Battle) selectAct(entry string) Result {
	switch entry {
	case ActCheck:
		return Result{Kind: ResultCheck, Text: b.Enemy.CheckInfo()}
	case ActTalk:
		b.Enemy.Sparable = true
		return Result{Kind: ResultTalk}
	}
	return Result{}
}

func (b *Battle) useItem(index int) Result {
	before := b.Heart.HP
	item, ok := b.Heart.UseItem(index)
	if !ok {
		return Result{}
	}
	b.startSafetyPause()
	return Result{Kind: ResultItemUsed, Item: item, Healed: b.Heart.HP - before}
}
