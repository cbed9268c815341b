// Package tui implements the machine's interactive session as a bubbletea
// program: an outer account-selection loop and an inner per-session menu
// loop, with PIN re-authentication in front of every sensitive operation.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gridline/bank"
	"gridline/config"
)

type screen int

const (
	screenSelect screen = iota
	screenLogin
	screenLoading
	screenMenu
	screenReauth
	screenAmount
	screenFastCash
	screenBalance
	screenHistory
	screenPinNew
	screenPinConfirm
	screenReceiptOffer
	screenReceipt
	screenAnother
	screenGoodbye
)

type op int

const (
	opNone op = iota
	opDeposit
	opWithdraw
	opChangePin
	opFastCash
	opTransfer
)

// receipt is the printable summary offered after a completed operation.
type receipt struct {
	title string
	rows  [][2]string
}

type loadedMsg struct{}
type goodbyeDoneMsg struct{}

// Model drives the session. All account mutation happens inside Update on
// the program's single goroutine.
type Model struct {
	cfg   *config.Config
	vault *bank.Vault
	log   *zap.Logger

	screen   screen
	active   *bank.Account
	op       op
	attempts int

	input textinput.Model
	spin  spinner.Model

	newPIN  int
	receipt receipt
	errMsg  string
	okMsg   string

	now func() time.Time
}

func New(cfg *config.Config, vault *bank.Vault, logger *zap.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = okStyle
	return Model{
		cfg:   cfg,
		vault: vault,
		log:   logger,
		spin:  sp,
		now:   time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		if m.screen == screenLoading {
			m.errMsg, m.okMsg = "", ""
			m.screen = screenMenu
		}
		return m, nil

	case goodbyeDoneMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.goodbye()
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenSelect:
		return m.keySelect(msg)
	case screenLogin:
		return m.keyLogin(msg)
	case screenMenu:
		return m.keyMenu(msg)
	case screenReauth:
		return m.keyReauth(msg)
	case screenAmount:
		return m.keyAmount(msg)
	case screenFastCash:
		return m.keyFastCash(msg)
	case screenBalance, screenHistory, screenReceipt:
		m.screen = screenAnother
		return m, nil
	case screenPinNew:
		return m.keyPinNew(msg)
	case screenPinConfirm:
		return m.keyPinConfirm(msg)
	case screenReceiptOffer:
		return m.keyReceiptOffer(msg)
	case screenAnother:
		return m.keyAnother(msg)
	}
	return m, nil
}

// --- outer loop: account selection and login ---

func (m Model) keySelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	accts := m.vault.Accounts()
	switch msg.String() {
	case "1", "2":
		m.active = accts[int(msg.String()[0]-'1')]
		m.attempts = 0
		m.errMsg, m.okMsg = "", ""
		m.promptPIN("Enter your PIN")
		m.screen = screenLogin
		return m, textinput.Blink
	case "3", "q":
		return m.goodbye()
	default:
		m.errMsg = "Invalid choice. Try again. (1-3)"
		return m, nil
	}
}

func (m Model) keyLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.active = nil
		m.errMsg, m.okMsg = "", ""
		m.screen = screenSelect
		return m, nil
	case tea.KeyEnter:
		pin, ok := m.readPIN()
		if !ok {
			return m, nil
		}
		if m.active.VerifyPIN(pin) {
			m.log.Info("login", zap.String("account", m.active.Name()))
			m.errMsg = ""
			m.okMsg = "Login successful."
			m.screen = screenLoading
			return m, tea.Batch(m.spin.Tick, loadTimer())
		}
		m.attempts++
		if m.attempts >= m.cfg.PINAttempts {
			m.log.Warn("login rejected", zap.String("account", m.active.Name()))
			m.active = nil
			m.screen = screenSelect
			m.errMsg = "Too many failed attempts. Returning to account selection..."
			return m, nil
		}
		m.errMsg = "Incorrect PIN."
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// --- inner loop: the session menu ---

func (m Model) keyMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg, m.okMsg = "", ""
	switch msg.String() {
	case "1":
		m.log.Info("balance check", zap.String("account", m.active.Name()))
		m.screen = screenBalance
		return m, nil
	case "2":
		m.op = opDeposit
		return m, m.beginReauth()
	case "3":
		m.op = opWithdraw
		return m, m.beginReauth()
	case "4":
		m.screen = screenHistory
		return m, nil
	case "5":
		m.op = opChangePin
		return m, m.beginReauth()
	case "6":
		m.op = opFastCash
		return m, m.beginReauth()
	case "7":
		m.op = opTransfer
		return m, m.beginReauth()
	case "8", "q":
		return m.logout()
	default:
		m.errMsg = "Invalid choice. Try again. (1-8)"
		return m, nil
	}
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.log.Info("logout", zap.String("account", m.active.Name()))
	m.okMsg = fmt.Sprintf("Logged out from %s.", m.active.Name())
	m.active = nil
	m.op = opNone
	m.screen = screenSelect
	return m, nil
}

func (m *Model) beginReauth() tea.Cmd {
	m.attempts = 0
	m.promptPIN("Re-enter your PIN")
	m.screen = screenReauth
	return textinput.Blink
}

func (m Model) keyReauth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.op = opNone
		m.errMsg, m.okMsg = "", ""
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		pin, ok := m.readPIN()
		if !ok {
			return m, nil
		}
		if m.active.VerifyPIN(pin) {
			m.errMsg = ""
			switch m.op {
			case opDeposit:
				m.promptAmount("Enter amount to deposit")
				m.screen = screenAmount
			case opWithdraw:
				m.promptAmount("Enter amount to withdraw")
				m.screen = screenAmount
			case opTransfer:
				m.promptAmount("Enter amount to transfer")
				m.screen = screenAmount
			case opChangePin:
				m.promptPIN("Enter new PIN")
				m.screen = screenPinNew
			case opFastCash:
				m.screen = screenFastCash
			}
			return m, textinput.Blink
		}
		m.attempts++
		if m.attempts >= m.cfg.PINAttempts {
			m.log.Warn("reauthentication rejected",
				zap.String("account", m.active.Name()))
			m.errMsg = "Authentication failed. Returning to menu."
			m.op = opNone
			m.screen = screenMenu
			return m, nil
		}
		m.errMsg = "Incorrect PIN."
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// --- amount-driven operations ---

func (m Model) keyAmount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.op = opNone
		m.errMsg, m.okMsg = "", ""
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		amt, ok := m.readAmount()
		if !ok {
			return m, nil
		}
		switch m.op {
		case opDeposit:
			return m.doDeposit(amt)
		case opWithdraw:
			return m.doWithdraw(amt)
		case opTransfer:
			return m.doTransfer(amt)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) doDeposit(amt decimal.Decimal) (tea.Model, tea.Cmd) {
	if err := m.active.Deposit(amt); err != nil {
		m.errMsg = "Amount must be positive."
		return m, nil
	}
	now := m.now()
	m.active.Record(bank.KindDeposit, amt, "", now)
	m.log.Info("deposit",
		zap.String("account", m.active.Name()),
		zap.String("amount", amt.StringFixed(2)))
	m.okMsg = fmt.Sprintf("Deposit successful. You deposited: %s", m.money(amt))
	m.receipt = receipt{
		title: "Deposit Receipt",
		rows: [][2]string{
			{"Amount", m.money(amt)},
			{"Date/Time", now.Format(bank.TimeLayout)},
			{"New Balance", m.money(m.active.Balance())},
		},
	}
	m.op = opNone
	m.screen = screenReceiptOffer
	return m, nil
}

func (m Model) doWithdraw(amt decimal.Decimal) (tea.Model, tea.Cmd) {
	multiple := decimal.NewFromInt(m.cfg.WithdrawMultiple)
	if !amt.Mod(multiple).IsZero() {
		m.errMsg = fmt.Sprintf("Invalid amount. Must be a positive multiple of %d.",
			m.cfg.WithdrawMultiple)
		m.op = opNone
		m.screen = screenAnother
		return m, nil
	}
	if err := m.active.Withdraw(amt); err != nil {
		m.errMsg = "Insufficient balance."
		m.op = opNone
		m.screen = screenAnother
		return m, nil
	}
	now := m.now()
	m.active.Record(bank.KindWithdrawal, amt, "", now)
	m.log.Info("withdrawal",
		zap.String("account", m.active.Name()),
		zap.String("amount", amt.StringFixed(2)))
	m.okMsg = fmt.Sprintf("Withdrawal successful. You withdrew: %s", m.money(amt))
	m.receipt = receipt{
		title: "Withdrawal Receipt",
		rows: [][2]string{
			{"Amount", m.money(amt)},
			{"Date/Time", now.Format(bank.TimeLayout)},
			{"New Balance", m.money(m.active.Balance())},
		},
	}
	m.op = opNone
	m.screen = screenReceiptOffer
	return m, nil
}

func (m Model) doTransfer(amt decimal.Decimal) (tea.Model, tea.Cmd) {
	target := m.vault.Counterparty(m.active)
	rcpt, err := m.vault.Transfer(m.active, target, amt)
	if err != nil {
		m.errMsg = "Insufficient balance!"
		m.op = opNone
		m.screen = screenAnother
		return m, nil
	}
	m.log.Info("transfer",
		zap.String("from", rcpt.From),
		zap.String("to", rcpt.To),
		zap.String("amount", rcpt.Amount.StringFixed(2)))
	m.okMsg = "Transfer successful!"
	m.receipt = receipt{
		title: "Transfer Successful!",
		rows: [][2]string{
			{"You transferred", m.money(rcpt.Amount)},
			{"From", rcpt.From},
			{"To", rcpt.To},
			{"Date/Time", rcpt.Time.Format(bank.TimeLayout)},
			{"Your new balance", m.money(rcpt.NewBalance)},
		},
	}
	m.op = opNone
	m.screen = screenReceipt
	return m, nil
}

func (m Model) keyFastCash(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if msg.Type == tea.KeyEsc || k == strconv.Itoa(len(m.cfg.FastCash)+1) {
		m.errMsg = "Fast Cash cancelled. Returning to menu."
		m.op = opNone
		m.screen = screenAnother
		return m, nil
	}
	idx := -1
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		idx = int(k[0] - '1')
	}
	if idx < 0 || idx >= len(m.cfg.FastCash) {
		m.errMsg = fmt.Sprintf("Invalid Fast Cash option. (1-%d)", len(m.cfg.FastCash)+1)
		return m, nil
	}
	amt := decimal.NewFromInt(m.cfg.FastCash[idx])
	if err := m.active.Withdraw(amt); err != nil {
		m.errMsg = "Insufficient Balance for Fast Cash."
		m.op = opNone
		m.screen = screenAnother
		return m, nil
	}
	now := m.now()
	m.active.Record(bank.KindFastCash, amt, "", now)
	m.log.Info("fast cash",
		zap.String("account", m.active.Name()),
		zap.String("amount", amt.StringFixed(2)))
	m.okMsg = fmt.Sprintf("You have successfully withdrawn: %s", m.money(amt))
	m.receipt = receipt{
		title: "Fast Cash Receipt",
		rows: [][2]string{
			{"Date & Time", now.Format(bank.TimeLayout)},
			{"Transaction Type", "Fast Cash"},
			{"Withdrew Amount", m.money(amt)},
			{"New Balance", m.money(m.active.Balance())},
		},
	}
	m.op = opNone
	m.screen = screenReceiptOffer
	return m, nil
}

// --- change PIN: re-auth is attempt-limited, the entry loop is not ---

func (m Model) keyPinNew(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.op = opNone
		m.errMsg, m.okMsg = "", ""
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		pin, ok := m.readPIN()
		if !ok {
			return m, nil
		}
		m.newPIN = pin
		m.errMsg = ""
		m.promptPIN("Confirm new PIN")
		m.screen = screenPinConfirm
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) keyPinConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.op = opNone
		m.errMsg, m.okMsg = "", ""
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		confirm, ok := m.readPIN()
		if !ok {
			return m, nil
		}
		if confirm != m.newPIN {
			m.errMsg = "New PIN and confirmation do not match. Try again."
			m.promptPIN("Enter new PIN")
			m.screen = screenPinNew
			return m, textinput.Blink
		}
		if err := m.active.SetPIN(confirm); err != nil {
			m.errMsg = "PIN must be 4 to 6 digits. Try again."
			m.promptPIN("Enter new PIN")
			m.screen = screenPinNew
			return m, textinput.Blink
		}
		m.log.Info("PIN changed", zap.String("account", m.active.Name()))
		m.errMsg = ""
		m.okMsg = "PIN successfully changed."
		m.op = opNone
		m.screen = screenAnother
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// --- receipts and the another-transaction prompt ---

func (m Model) keyReceiptOffer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.screen = screenReceipt
		return m, nil
	case "n":
		m.screen = screenAnother
		return m, nil
	default:
		m.errMsg = "Please enter Y (yes) or N (no)."
		return m, nil
	}
}

func (m Model) keyAnother(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.errMsg, m.okMsg = "", ""
		m.screen = screenMenu
		return m, nil
	case "n":
		return m.logout()
	default:
		m.errMsg = "Please enter Y (yes) or N (no)."
		return m, nil
	}
}

func (m Model) goodbye() (tea.Model, tea.Cmd) {
	m.screen = screenGoodbye
	return m, tea.Batch(m.spin.Tick, goodbyeTimer())
}

// --- input plumbing ---

func (m *Model) promptPIN(placeholder string) {
	in := textinput.New()
	in.Placeholder = placeholder
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.CharLimit = 6
	in.Focus()
	m.input = in
}

func (m *Model) promptAmount(placeholder string) {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 12
	in.Focus()
	m.input = in
}

// readPIN consumes the input field. Format errors re-prompt without
// spending an authentication attempt.
func (m *Model) readPIN() (int, bool) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		m.errMsg = "No input provided. Please enter a number."
		return 0, false
	}
	pin, err := strconv.Atoi(raw)
	if err != nil {
		m.errMsg = "Invalid input. Please enter a valid integer."
		return 0, false
	}
	return pin, true
}

func (m *Model) readAmount() (decimal.Decimal, bool) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		m.errMsg = "No input provided. Please enter an amount."
		return decimal.Zero, false
	}
	amt, err := decimal.NewFromString(raw)
	if err != nil {
		m.errMsg = "Invalid input. Please enter a valid number (e.g., 100.50)."
		return decimal.Zero, false
	}
	if !amt.IsPositive() {
		m.errMsg = "Amount must be positive."
		return decimal.Zero, false
	}
	return amt, true
}

func (m Model) money(d decimal.Decimal) string {
	return m.cfg.Currency + " " + d.StringFixed(2)
}

func loadTimer() tea.Cmd {
	return tea.Tick(1200*time.Millisecond, func(time.Time) tea.Msg {
		return loadedMsg{}
	})
}

func goodbyeTimer() tea.Cmd {
	return tea.Tick(1600*time.Millisecond, func(time.Time) tea.Msg {
		return goodbyeDoneMsg{}
	})
}
