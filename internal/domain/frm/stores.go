package frm

import (
	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/store"
)

type Stores struct {
	Expenses      *store.Store[Expense]
	PersonalLoans *store.Store[PersonalLoan]
	OfficeLoans   *store.Store[OfficeLoan]
	Profits       *store.Store[Profit]
}

func NewStores(local *localstore.Store) *Stores {
	return &Stores{
		Expenses:      store.New[Expense]("frm.expenses", local),
		PersonalLoans: store.New[PersonalLoan]("frm.personalLoans", local),
		OfficeLoans:   store.New[OfficeLoan]("frm.officeLoans", local),
		Profits:       store.New[Profit]("frm.profits", local),
	}
}

func (s *Stores) Load() error {
	for _, load := range []func() error{
		s.Expenses.Load,
		s.PersonalLoans.Load,
		s.OfficeLoans.Load,
		s.Profits.Load,
	} {
		if err := load(); err != nil {
			return err
		}
	}
	return nil
}
