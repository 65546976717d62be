package models

type User struct {
	ID       int64  `json:"id" pg:",pk"`
	Name     string `json:"name" pg:",notnull"`
	CPF      string `json:"cpf" pg:"cpf,notnull,unique"`
	Password string `json:"-" pg:",notnull"`
	Email    string `json:"email" pg:",notnull,unique"`
}
