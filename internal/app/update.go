package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/app/navctl"
	"github.com/llehouerou/rounds/internal/app/popupctl"
	"github.com/llehouerou/rounds/internal/keymap"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/timer"
	"github.com/llehouerou/rounds/internal/ui"
	"github.com/llehouerou/rounds/internal/ui/action"
	"github.com/llehouerou/rounds/internal/ui/confirm"
	"github.com/llehouerou/rounds/internal/ui/helpbindings"
	"github.com/llehouerou/rounds/internal/ui/setupview"
	"github.com/llehouerou/rounds/internal/ui/timerview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.publish()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case SettingsMessage:
		return m.handleSettingsMsg(msg)

	case RemoteMessage:
		return m.handleRemoteMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateScreens(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.Navigation.SetSize(msg.Width, max(msg.Height-ui.HeaderHeight, 0))
	m.Popups.SetSize(msg.Width, msg.Height)
	return m, nil
}

// updateScreens passes a non-key message to both screens. The setup clock
// keeps running while a session is on display.
func (m Model) updateScreens(msg tea.Msg) (Model, tea.Cmd) {
	setup, setupCmd := m.Navigation.Setup().Update(msg)
	m.Navigation.SetSetup(setup)

	var timerCmd tea.Cmd
	if tv, ok := m.Navigation.Timer(); ok {
		tv, timerCmd = tv.Update(msg)
		m.Navigation.SetTimer(tv)
	}
	return m, tea.Batch(setupCmd, timerCmd)
}

func (m Model) handleSettingsMsg(msg SettingsMessage) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SettingsChangedMsg:
		s := settings.Settings(msg)
		var cmd tea.Cmd
		if tv, ok := m.Navigation.Timer(); ok {
			cmd = tv.ApplySettings(s)
		}
		if m.Navigation.Screen() == navctl.ScreenSetup {
			setup := m.Navigation.Setup()
			setup.Load()
			m.Navigation.SetSetup(setup)
		}
		return m, tea.Batch(cmd, waitForSettings(m.sub))

	case SettingsClosedMsg:
		m.sub = nil
	}
	return m, nil
}

func (m Model) handleRemoteMsg(msg RemoteMessage) (Model, tea.Cmd) {
	rm, ok := msg.(RemoteMsg)
	if !ok {
		return m, nil
	}
	tv, mounted := m.Navigation.Timer()
	if !mounted {
		return m, nil
	}
	switch rm.Command {
	case RemoteToggle:
		return m, tv.Toggle()
	case RemotePlay:
		return m, tv.Play()
	case RemotePause:
		return m, tv.Pause()
	case RemoteReset:
		return m, tv.Reset()
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case setupview.Committed:
		m.Log.Infof("session started: %d rounds of %s, %s rest",
			a.Settings.Rounds, timer.FormatTime(a.Settings.RoundDuration), timer.FormatTime(a.Settings.RestDuration))
		return m, m.Navigation.StartSession(a.Settings)

	case timerview.Back:
		m.Navigation.ShowSetup()
		return m, nil

	case timerview.ExitRequested:
		return m, m.Popups.ShowConfirm("Stop training?",
			"The session is running. Leave it and go back to setup?", popupctl.ConfirmLeaveSession)

	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		return m.handleConfirmResult(a)

	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmResult(r confirm.Result) (Model, tea.Cmd) {
	ctx, _ := r.Context.(popupctl.ConfirmContext)
	switch ctx {
	case popupctl.ConfirmLeaveSession:
		tv, ok := m.Navigation.Timer()
		if !ok {
			return m, nil
		}
		if r.Confirmed {
			m.Log.Infof("session left from round %d/%d", tv.Snapshot().Round, tv.Snapshot().Rounds)
			return m, tv.ConfirmExit()
		}
		tv.CancelExit()
		return m, nil

	case popupctl.ConfirmQuit:
		if r.Confirmed {
			return m.quit()
		}
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		if tv, ok := m.Navigation.Timer(); ok && tv.Running() {
			return m, m.Popups.ShowConfirm("Quit?",
				"The session is still running.", popupctl.ConfirmQuit)
		}
		return m.quit()
	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp(m.Navigation.Screen().HelpContexts())
	}

	if m.Navigation.Screen() == navctl.ScreenTimer {
		if tv, ok := m.Navigation.Timer(); ok {
			tv, cmd := tv.Update(msg)
			m.Navigation.SetTimer(tv)
			return m, cmd
		}
	}
	setup, cmd := m.Navigation.Setup().Update(msg)
	m.Navigation.SetSetup(setup)
	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	m.Navigation.Close()
	return m, tea.Quit
}
