package domain

type PlayerID int64
type UserID int64
type RoleID int64

type Player struct {
	ID          PlayerID
	Name        string
	Title       string
	Score       int
	LastUpdated *string // RFC3339, nil until the store has written the row
	UserID      *UserID
}

type Role struct {
	ID   RoleID
	Name string
}

type User struct {
	ID       UserID
	Username string
	Role     Role
}
