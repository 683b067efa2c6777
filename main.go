// xiangqi-arena is a terminal landing page: an annotated xiangqi board next to
// a login/register panel.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"xiangqi-arena/auth"
	"xiangqi-arena/config"
	"xiangqi-arena/logging"
	"xiangqi-arena/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagRegister = flag.Bool("register", false, "Start in register mode")
	flagFocus    = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagDebug    = flag.Bool("debug", false, "Log at debug level")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var arenaBoard *ui.XiangqiBoardUI
var authForm *ui.AuthFormUI
var arenaFrame *tview.Flex
var arenaHint *tview.TextView
var cfg *config.Config
var focusMode bool

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("xiangqi-arena %s\n", Version)
		return
	}

	logFile, err := logging.Init(*flagDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg, err = config.InitConfig()
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info().Str("version", Version).Msg("starting")

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬡ xiangqi arena ")

	arenaHint = tview.NewTextView()
	arenaHint.SetBorder(false)
	arenaHint.SetTextColor(ui.MenuColors.Hint)
	arenaBoard = ui.NewXiangqiBoard(app, cfg, arenaHint)

	mode := auth.Login
	if *flagRegister {
		mode = auth.Register
	}
	submitter := auth.StubSubmitter{
		Delay: time.Duration(cfg.Auth.SubmitDelayMillis) * time.Millisecond,
		Fail:  cfg.Auth.SimulateFailure,
	}
	authForm = ui.NewAuthForm(app, submitter, mode, showNotice)
	defer authForm.Close()

	arenaFrame = ui.CreateArenaLayout(arenaBoard, authForm, arenaHint)
	if *flagFocus {
		focusMode = true
		ui.BuildFocusLayout(arenaFrame, arenaBoard, arenaHint)
	}

	arenaBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyRight:
			arenaBoard.FocusNext()
			return nil
		case tcell.KeyBacktab, tcell.KeyLeft:
			arenaBoard.FocusPrev()
			return nil
		case tcell.KeyEsc:
			arenaBoard.Blur()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'l':
				arenaBoard.FocusNext()
				return nil
			case 'h':
				arenaBoard.FocusPrev()
				return nil
			case 'f':
				toggleFocusMode()
				return nil
			case 'y':
				if err := arenaBoard.CopyAnnotation(); err != nil {
					log.Warn().Err(err).Msg("copy failed")
				}
				return nil
			case 'c':
				arenaBoard.Dismiss()
				rootPage.SwitchToPage("theme")
				return nil
			}
		}
		return event
	})

	// Every mouse event is a pointer position for the board, so leaving a
	// target is noticed even when the pointer lands on another widget.
	app.SetMouseCapture(func(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
		if arenaVisible() {
			x, y := event.Position()
			arenaBoard.PointerAt(x, y)
		}
		return event, action
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlF && arenaVisible() {
			switch {
			case focusMode:
				toggleFocusMode()
				app.SetFocus(authForm.Flex())
			case arenaBoard.Box.HasFocus():
				app.SetFocus(authForm.Flex())
			default:
				app.SetFocus(arenaBoard.Box)
			}
			return nil
		}
		return event
	})

	overlay := ui.NewAnnotationOverlay(arenaBoard.Annotations(), cfg)
	app.SetAfterDrawFunc(overlay.Draw)

	// Theme screen
	themeConfig := ui.NewThemeConfig(cfg, func() {
		arenaBoard.SetConfig(cfg)
		rootPage.SwitchToPage("arena")
	})
	themeConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("arena")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			themeConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("arena", arenaFrame, true, true)
	rootPage.AddPage("theme", ui.CreateCenteredForm(themeConfig.Flex(), 72), true, false)

	if err := app.SetRoot(rootPage, true).SetFocus(arenaBoard.Box).Run(); err != nil {
		log.Error().Err(err).Msg("application stopped")
		panic(err)
	}
	log.Info().Msg("exiting")
}

// arenaVisible reports whether the arena page is on top.
func arenaVisible() bool {
	name, _ := rootPage.GetFrontPage()
	return name == "arena"
}

// toggleFocusMode switches between the board-only and the two-column layout.
func toggleFocusMode() {
	focusMode = !focusMode
	if focusMode {
		ui.BuildFocusLayout(arenaFrame, arenaBoard, arenaHint)
		app.SetFocus(arenaBoard.Box)
	} else {
		ui.RebuildNormalLayout(arenaFrame, arenaBoard, authForm, arenaHint)
	}
}

// showNotice shows msg in a modal until dismissed.
func showNotice(msg string) {
	arenaBoard.Dismiss()
	focused := app.GetFocus()
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("notice")
			app.SetFocus(focused)
		})
	rootPage.AddPage("notice", modal, true, true)
}
