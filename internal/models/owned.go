package models

// Owned is implemented by every record scoped to a single user.
type Owned interface {
	Owner() string
	SetOwner(userID string)
}

func (v *Vehicle) Owner() string          { return v.UserID }
func (v *Vehicle) SetOwner(userID string) { v.UserID = userID }

func (e *FuelEntry) Owner() string          { return e.UserID }
func (e *FuelEntry) SetOwner(userID string) { e.UserID = userID }

func (e *ExpenseEntry) Owner() string          { return e.UserID }
func (e *ExpenseEntry) SetOwner(userID string) { e.UserID = userID }

func (e *IncomeEntry) Owner() string          { return e.UserID }
func (e *IncomeEntry) SetOwner(userID string) { e.UserID = userID }

func (e *CatalogEntry) Owner() string          { return e.UserID }
func (e *CatalogEntry) SetOwner(userID string) { e.UserID = userID }
