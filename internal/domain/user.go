package domain

type User struct {
	ID              int64
	Name            string
	LikeTravelPlace string
	PhoneNum        string
}

type Passenger struct {
	ID          int64
	UserID      int64
	PassportNum string
}
