package models

type User struct {
	Id       string `json:"id" pg:",pk"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type UserDto struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
