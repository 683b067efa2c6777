package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xiangqi-arena/auth"
)

const meterWidth = 20

// AuthFormUI is the login/register panel.
type AuthFormUI struct {
	app       *tview.Application
	form      *tview.Form
	flex      *tview.Flex
	tabs      *tview.TextView
	status    *tview.TextView
	submitter auth.Submitter
	onNotice  func(string)

	state        auth.State
	touched      auth.Touched
	submitting   bool
	showPassword bool
	cancel       context.CancelFunc
}

// NewAuthForm creates the auth panel. onNotice receives the message shown
// after a submission finishes.
func NewAuthForm(app *tview.Application, submitter auth.Submitter, mode auth.Mode, onNotice func(string)) *AuthFormUI {
	a := &AuthFormUI{
		app:       app,
		submitter: submitter,
		onNotice:  onNotice,
		state:     auth.InitialState.WithMode(mode),
		touched:   auth.Touched{},
	}

	brand := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
	brand.SetText(fmt.Sprintf("[%s::b] 棋 [%s::b] Xiangqi Arena.[-:-:-]\n[%s]    Play. Learn. Challenge the board.[-]",
		colorTag(MenuColors.TitleAccent), colorTag(MenuColors.Title), colorTag(MenuColors.Hint)))
	brand.SetBackgroundColor(MenuColors.CardBG)

	a.tabs = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	a.status = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight)

	a.form = tview.NewForm()
	a.form.SetBorder(false)
	a.form.SetFieldBackgroundColor(MenuColors.FieldBG)
	a.form.SetLabelColor(MenuColors.Label)
	a.form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	a.form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: fields  |  Ctrl-R: switch mode  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	a.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(brand, 3, 0, false).
		AddItem(a.tabs, 2, 0, false).
		AddItem(a.form, 0, 1, true).
		AddItem(a.status, 5, 0, false).
		AddItem(helpText, 1, 0, false)
	a.flex.SetBorder(true)
	a.flex.SetBorderColor(MenuColors.Border)
	a.flex.SetTitle(" Account ")

	a.form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlR {
			a.ToggleMode()
			return nil
		}
		return event
	})

	a.rebuild()
	return a
}

// Flex returns the container holding the whole panel.
func (a *AuthFormUI) Flex() *tview.Flex {
	return a.flex
}

// State returns the current form content.
func (a *AuthFormUI) State() auth.State {
	return a.state
}

// SetMode switches between login and register and focuses the first input.
func (a *AuthFormUI) SetMode(m auth.Mode) {
	if a.state.Mode == m {
		return
	}
	a.state = a.state.WithMode(m)
	a.rebuild()
}

// ToggleMode flips the current mode.
func (a *AuthFormUI) ToggleMode() {
	if a.state.Mode == auth.Login {
		a.SetMode(auth.Register)
	} else {
		a.SetMode(auth.Login)
	}
}

// Close cancels an in-flight submission.
func (a *AuthFormUI) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}

// rebuild recreates the form items for the current mode.
func (a *AuthFormUI) rebuild() {
	hadFocus := a.form.HasFocus()
	a.form.Clear(true)

	a.addField(auth.Username, "Username", "Your username.", false)
	if a.state.Mode == auth.Register {
		a.addField(auth.Email, "Email", "name@example.com", false)
	}
	placeholder := "Your password."
	if a.state.Mode == auth.Register {
		placeholder = "At least 8 characters."
	}
	a.addField(auth.Password, "Password", placeholder, !a.showPassword)

	a.form.AddCheckbox("Show password", a.showPassword, func(checked bool) {
		a.showPassword = checked
		focused, _ := a.form.GetFocusedItemIndex()
		a.rebuild()
		a.form.SetFocus(focused)
		a.app.SetFocus(a.form)
	})

	a.form.AddButton(a.submitLabel(), a.Submit)
	switchLabel := "Create an account."
	if a.state.Mode == auth.Register {
		switchLabel = "Log in."
	}
	a.form.AddButton(switchLabel, a.ToggleMode)
	a.form.SetFocus(0)
	if hadFocus {
		a.app.SetFocus(a.form)
	}
	a.refresh()
}

func (a *AuthFormUI) addField(f auth.Field, label, placeholder string, masked bool) {
	input := tview.NewInputField().
		SetLabel(label).
		SetText(a.state.Value(f)).
		SetPlaceholder(placeholder).
		SetFieldWidth(28)
	if masked {
		input.SetMaskCharacter('•')
	}
	input.SetChangedFunc(func(text string) {
		a.state = a.state.WithField(f, text)
		a.refresh()
	})
	input.SetBlurFunc(func() {
		a.touched[f] = true
		a.refresh()
	})
	a.form.AddFormItem(input)
}

func (a *AuthFormUI) submitLabel() string {
	switch {
	case a.submitting && a.state.Mode == auth.Login:
		return "Logging in..."
	case a.submitting:
		return "Registering..."
	case a.state.Mode == auth.Login:
		return "Log in"
	default:
		return "Create account"
	}
}

// Submit validates and, if valid, sends the form in the background.
func (a *AuthFormUI) Submit() {
	if a.submitting {
		return
	}
	a.touched.All()
	if !auth.Validate(a.state).Valid() {
		a.refresh()
		return
	}
	a.setSubmitting(true)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	state := a.state
	go func() {
		res, err := a.submitter.Submit(ctx, state)
		a.app.QueueUpdateDraw(func() {
			cancel()
			a.setSubmitting(false)
			if err != nil {
				a.notify(fmt.Sprintf("Submission failed:\n%s", err))
				return
			}
			a.notify(res.Message(state.Mode))
		})
	}()
}

func (a *AuthFormUI) notify(msg string) {
	if a.onNotice != nil {
		a.onNotice(msg)
	}
}

func (a *AuthFormUI) setSubmitting(v bool) {
	a.submitting = v
	// Submit is always the first button.
	if a.form.GetButtonCount() > 0 {
		a.form.GetButton(0).SetLabel(a.submitLabel())
	}
}

// refresh redraws tabs, field errors and the strength meter.
func (a *AuthFormUI) refresh() {
	active, idle := colorTag(MenuColors.Title), colorTag(MenuColors.Hint)
	login := fmt.Sprintf("[%s::b]▸ Log in[-:-:-]", active)
	register := fmt.Sprintf("[%s]  Register[-]", idle)
	if a.state.Mode == auth.Register {
		login = fmt.Sprintf("[%s]  Log in[-]", idle)
		register = fmt.Sprintf("[%s::b]▸ Register[-:-:-]", active)
	}
	a.tabs.SetText(login + "      " + register)

	errs := auth.Validate(a.state)
	var b strings.Builder
	for _, f := range auth.Fields {
		if msg := errs.Visible(f, a.touched); msg != "" {
			fmt.Fprintf(&b, "[%s]%s[-]\n", colorTag(MenuColors.Error), msg)
		}
	}
	if strength := auth.PasswordStrength(a.state); strength != auth.NoStrength {
		filled := strength.Percent() * meterWidth / 100
		fmt.Fprintf(&b, "[%s]%s[%s]%s[-] [%s]Strength: %s[-]",
			colorTag(MenuColors.MeterFill), strings.Repeat("█", filled),
			colorTag(MenuColors.MeterEmpty), strings.Repeat("░", meterWidth-filled),
			colorTag(MenuColors.Hint), strength)
	}
	a.status.SetText(b.String())
}

// colorTag formats c for tview's dynamic color tags.
func colorTag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
