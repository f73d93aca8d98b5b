package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samira-travel/backoffice/jamaah"
)

type state int

const (
	stateLogin state = iota
	stateList
	stateDetail
	stateConfirmLogout
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

type model struct {
	client *apiClient
	state  state

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loginErr      string

	// all holds the one-time fetch result; visible is the pure filter
	// derivation shown in the table, recomputed locally per keystroke
	searchInput textinput.Model
	all         []jamaah.Submission
	visible     []jamaah.Submission
	table       table.Model
	listErr     string
	loading     bool

	detail    jamaah.SubmissionDetail
	detailErr string
}

type loggedInMsg struct{ user staffUser }
type loginFailedMsg struct{ err error }
type submissionsMsg struct{ subs []jamaah.Submission }
type listFailedMsg struct{ err error }
type detailMsg struct{ detail jamaah.SubmissionDetail }
type detailFailedMsg struct{ err error }

func initialModel(client *apiClient) model {
	email := textinput.New()
	email.Placeholder = "Email Address"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword

	search := textinput.New()
	search.Placeholder = "Search by name or email"

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "City", Width: 14},
		{Title: "Gender", Width: 12},
		{Title: "Package", Width: 18},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return model{
		client:        client,
		state:         stateLogin,
		emailInput:    email,
		passwordInput: password,
		searchInput:   search,
		table:         t,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		return m.updateLogin(msg)
	case stateList:
		return m.updateList(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateConfirmLogout:
		return m.updateConfirmLogout(msg)
	}
	return m, nil
}

func (m model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.loginFocus = (m.loginFocus + 1) % 2
			if m.loginFocus == 0 {
				m.emailInput.Focus()
				m.passwordInput.Blur()
			} else {
				m.emailInput.Blur()
				m.passwordInput.Focus()
			}
			return m, nil
		case "enter":
			email := m.emailInput.Value()
			password := m.passwordInput.Value()
			m.loginErr = ""
			m.loading = true
			return m, func() tea.Msg {
				user, err := m.client.login(email, password)
				if err != nil {
					return loginFailedMsg{err: err}
				}
				return loggedInMsg{user: user}
			}
		}
	case loggedInMsg:
		m.state = stateList
		m.loading = true
		m.searchInput.Focus()
		return m, m.fetchSubmissions()
	case loginFailedMsg:
		m.loading = false
		m.loginErr = msg.err.Error()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	cmds = append(cmds, cmd)
	m.passwordInput, cmd = m.passwordInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// fetchSubmissions loads the whole collection. Issued once, on login;
// search never refetches.
func (m *model) fetchSubmissions() tea.Cmd {
	return func() tea.Msg {
		subs, err := m.client.listSubmissions()
		if err != nil {
			return listFailedMsg{err: err}
		}
		return submissionsMsg{subs: subs}
	}
}

// applyFilter recomputes the visible rows from the fetched list and the
// current search text.
func (m *model) applyFilter() {
	m.visible = jamaah.Filter(m.all, m.searchInput.Value())
	rows := make([]table.Row, 0, len(m.visible))
	for _, sub := range m.visible {
		rows = append(rows, table.Row{sub.Nama, sub.Email, sub.Kota, sub.JenisKelamin, sub.PaketUmroh})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.state = stateConfirmLogout
			return m, nil
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.visible) {
				id := m.visible[idx].ID
				m.loading = true
				return m, func() tea.Msg {
					detail, err := m.client.getSubmission(id)
					if err != nil {
						return detailFailedMsg{err: err}
					}
					return detailMsg{detail: detail}
				}
			}
			return m, nil
		case "up", "down":
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		// everything else edits the search box; filtering is a pure
		// derivation over the already-fetched list, never a new fetch
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applyFilter()
		return m, cmd
	case submissionsMsg:
		m.loading = false
		m.listErr = ""
		m.all = msg.subs
		m.applyFilter()
		return m, nil
	case listFailedMsg:
		m.loading = false
		m.listErr = msg.err.Error()
		return m, nil
	case detailMsg:
		m.loading = false
		m.detail = msg.detail
		m.detailErr = ""
		m.state = stateDetail
		return m, nil
	case detailFailedMsg:
		m.loading = false
		m.detailErr = msg.err.Error()
		m.state = stateDetail
		return m, nil
	}
	return m, nil
}

func (m model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.state = stateConfirmLogout
			return m, nil
		case "b", "esc":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m model) updateConfirmLogout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.client.logout()
			return m, tea.Quit
		case "n", "N", "esc":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateLogin:
		return m.viewLogin()
	case stateList:
		return m.viewList()
	case stateDetail:
		return m.viewDetail()
	case stateConfirmLogout:
		return titleStyle.Render("Log out?") + "\n\n" +
			"This clears your session.\n\n" +
			"(y) yes, log out and quit   (n) no, stay\n"
	}
	return ""
}

func (m model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Web Travel Login") + "\n\n")
	b.WriteString(m.emailInput.View() + "\n")
	b.WriteString(m.passwordInput.View() + "\n\n")
	if m.loading {
		b.WriteString(dimStyle.Render("Signing in...") + "\n")
	}
	if m.loginErr != "" {
		b.WriteString(errStyle.Render(m.loginErr) + "\n")
	}
	b.WriteString(dimStyle.Render("\ntab to switch fields, enter to sign in, ctrl+c to quit\n"))
	return b.String()
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Jamaah Submissions") + "\n\n")
	b.WriteString(m.searchInput.View() + "\n\n")
	if m.loading {
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	}
	if m.listErr != "" {
		b.WriteString(errStyle.Render("Error: "+m.listErr) + "\n")
	}
	b.WriteString(m.table.View() + "\n")
	b.WriteString(dimStyle.Render("\nenter to view details, q to log out and quit\n"))
	return b.String()
}

func (m model) viewDetail() string {
	if m.detailErr != "" {
		return errStyle.Render(m.detailErr) + "\n\n" +
			dimStyle.Render("b to go back\n")
	}

	d := m.detail
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Nama) + "\n\n")
	b.WriteString(labelStyle.Render("Email: ") + d.Email + "\n")
	b.WriteString(labelStyle.Render("Phone: ") + d.NoHp + "\n")
	b.WriteString(labelStyle.Render("Gender: ") + d.JenisKelamin + "\n")
	b.WriteString(labelStyle.Render("Date of Birth: ") + d.Ttl + "\n")
	b.WriteString(labelStyle.Render("City: ") + d.Kota + "\n")
	b.WriteString(labelStyle.Render("Address: ") + d.Alamat + "\n")
	b.WriteString(labelStyle.Render("Occupation: ") + d.Pekerjaan + "\n")
	b.WriteString(labelStyle.Render("Package: ") + d.PaketUmroh + "\n\n")

	b.WriteString(titleStyle.Render("Documents") + "\n")
	if len(d.Documents) == 0 {
		b.WriteString(dimStyle.Render("no documents resolved") + "\n")
	}
	for field, url := range d.Documents {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(field+":"), url))
	}
	b.WriteString(dimStyle.Render("\nb to go back, ctrl+c to log out and quit\n"))
	return b.String()
}
