package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	switch m.screen {
	case screenSelect:
		return m.viewSelect()
	case screenLogin, screenReauth, screenPinNew, screenPinConfirm:
		return m.viewPINEntry()
	case screenLoading:
		return m.viewLoading()
	case screenMenu:
		return m.viewMenu()
	case screenBalance:
		return m.viewBalance()
	case screenAmount:
		return m.viewAmount()
	case screenFastCash:
		return m.viewFastCash()
	case screenHistory:
		return m.viewHistory()
	case screenReceiptOffer:
		return m.viewReceiptOffer()
	case screenReceipt:
		return m.viewReceipt()
	case screenAnother:
		return m.viewAnother()
	case screenGoodbye:
		return m.viewGoodbye()
	}
	return ""
}

func (m Model) banner() string {
	return titleStyle.Render(m.cfg.BankName + " ATM")
}

func (m Model) messages() string {
	var b strings.Builder
	if m.okMsg != "" {
		b.WriteString(okStyle.Render(m.okMsg) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

func (m Model) viewSelect() string {
	accts := m.vault.Accounts()
	lines := []string{"Choose account to log in:", ""}
	for i, a := range accts {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, a.Name()))
	}
	lines = append(lines, fmt.Sprintf("[%d] Quit ATM", len(accts)+1))
	return m.banner() + "\n" +
		boxStyle.Render(menuStyle.Render(strings.Join(lines, "\n"))) + "\n" +
		m.messages() +
		helpStyle.Render("Press 1-3 to choose")
}

func (m Model) viewPINEntry() string {
	var heading string
	switch m.screen {
	case screenLogin:
		heading = fmt.Sprintf("Logging in as %s", m.active.Name())
	case screenReauth:
		heading = "Please re-enter your PIN"
	case screenPinNew:
		heading = "Enter new PIN"
	case screenPinConfirm:
		heading = "Confirm new PIN"
	}
	body := labelStyle.Render(heading) + "\n\n" + m.input.View()
	return m.banner() + "\n" +
		boxStyle.Render(body) + "\n" +
		m.messages() +
		helpStyle.Render("ENTER to confirm · ESC to cancel")
}

func (m Model) viewLoading() string {
	return m.banner() + "\n" +
		okStyle.Render(m.okMsg) + "\n" +
		fmt.Sprintf("Loading account %s %s\n", m.active.Name(), m.spin.View())
}

func (m Model) viewMenu() string {
	balance := fmt.Sprintf("%s %s",
		labelStyle.Render("Current Balance:"),
		okStyle.Render(m.money(m.active.Balance())))
	menu := strings.Join([]string{
		"---- ATM Menu ----",
		"[1] Check Balance",
		"[2] Deposit",
		"[3] Withdraw",
		"[4] Transaction History",
		"[5] Change PIN",
		"[6] Fast Cash",
		"[7] Transfer Funds",
		"[8] Logout",
	}, "\n")
	return m.banner() + "\n" +
		balance + "\n" +
		boxStyle.Render(menuStyle.Render(menu)) + "\n" +
		m.messages() +
		helpStyle.Render("Please enter your choice (1-8)")
}

func (m Model) viewBalance() string {
	body := labelStyle.Render("Current Balance") + "\n\n" +
		okStyle.Render("Your Current Balance is: "+m.money(m.active.Balance()))
	return m.banner() + "\n" +
		boxStyle.Render(body) + "\n" +
		helpStyle.Render("Press any key to continue")
}

func (m Model) viewAmount() string {
	var heading string
	switch m.op {
	case opDeposit:
		heading = "Enter amount to deposit:"
	case opWithdraw:
		heading = fmt.Sprintf("Enter amount to withdraw (multiples of %d):",
			m.cfg.WithdrawMultiple)
	case opTransfer:
		target := m.vault.Counterparty(m.active)
		heading = fmt.Sprintf("Transferring from %s to %s\nEnter amount to transfer:",
			m.active.Name(), target.Name())
	}
	body := labelStyle.Render(heading) + "\n\n" + m.input.View()
	return m.banner() + "\n" +
		boxStyle.Render(body) + "\n" +
		m.messages() +
		helpStyle.Render("ENTER to confirm · ESC to cancel")
}

func (m Model) viewFastCash() string {
	lines := []string{"Fast Cash Options:", ""}
	for i, amt := range m.cfg.FastCash {
		lines = append(lines, fmt.Sprintf("[%d] %s %d.00", i+1, m.cfg.Currency, amt))
	}
	lines = append(lines, fmt.Sprintf("[%d] Cancel Fast Cash", len(m.cfg.FastCash)+1))
	return m.banner() + "\n" +
		boxStyle.Render(menuStyle.Render(strings.Join(lines, "\n"))) + "\n" +
		m.messages() +
		helpStyle.Render(fmt.Sprintf("Choose an option (1-%d)", len(m.cfg.FastCash)+1))
}

func (m Model) viewHistory() string {
	history := m.active.History()
	var body string
	if len(history) == 0 {
		body = errStyle.Render("No transactions yet.")
	} else {
		lines := make([]string, 0, len(history)+1)
		lines = append(lines, labelStyle.Render("Transaction History:"))
		for _, tx := range history {
			lines = append(lines, tx.Describe(m.cfg.Currency))
		}
		body = strings.Join(lines, "\n")
	}
	return m.banner() + "\n" +
		boxStyle.Render(body) + "\n" +
		helpStyle.Render("Press any key to continue")
}

func (m Model) viewReceiptOffer() string {
	return m.banner() + "\n" +
		m.messages() +
		labelStyle.Render("Print receipt? (Y/N): ")
}

func (m Model) viewReceipt() string {
	lines := make([]string, 0, len(m.receipt.rows)+2)
	lines = append(lines, labelStyle.Render("----- "+m.receipt.title+" -----"), "")
	for _, row := range m.receipt.rows {
		lines = append(lines, fmt.Sprintf("%s: %s", row[0], okStyle.Render(row[1])))
	}
	return m.banner() + "\n" +
		boxStyle.Render(strings.Join(lines, "\n")) + "\n" +
		helpStyle.Render("Press any key to continue")
}

func (m Model) viewAnother() string {
	return m.banner() + "\n" +
		m.messages() +
		labelStyle.Render("Would you like another transaction? (Y/N): ")
}

func (m Model) viewGoodbye() string {
	body := fmt.Sprintf("Thank you for using %s. Goodbye!", m.cfg.BankName)
	return m.banner() + "\n" +
		boxStyle.Render(body) + "\n" +
		fmt.Sprintf(" Exiting... %s\n", m.spin.View())
}
