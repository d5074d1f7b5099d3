package domain

import (
	"time"
)

type Subunit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	LeaderID  int64     `json:"leaderId"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
