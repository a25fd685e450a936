package model

import "github.com/amirhossein-jamali/account-ledger/internal/domain/entity"

// Account represents the database model for accounts
type Account struct {
	AccountID string `gorm:"column:account_id;primaryKey;type:varchar(64)"`
	Balance   int64  `gorm:"column:balance;not null"` // minor units
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// ToEntity converts the row to a domain account
func (a Account) ToEntity() *entity.Account {
	return &entity.Account{ID: a.AccountID, Balance: a.Balance}
}

// AccountFromEntity converts a domain account to its row
func AccountFromEntity(a *entity.Account) Account {
	return Account{AccountID: a.ID, Balance: a.Balance}
}
