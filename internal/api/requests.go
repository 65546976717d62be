package api

type submitVoteRequest struct {
	SectionID *int64 `json:"sectionId" label:"ID da seção" validate:"required,gt=0"`
	UserID    *int64 `json:"userId" label:"ID do usuário" validate:"required,gt=0"`
	Vote      *bool  `json:"vote" label:"Voto" validate:"required"`
}

type createSectionRequest struct {
	Name        string `json:"name" label:"Nome da seção" validate:"required,min=3,max=200"`
	Description string `json:"description" label:"Descrição" validate:"required,min=10,max=1000"`
	Expiration  *int   `json:"expiration" label:"Tempo de expiração" validate:"required,min=1"`
}

type createUserRequest struct {
	Name     string `json:"name" label:"Nome" validate:"required,min=2,max=100"`
	CPF      string `json:"cpf" label:"CPF" validate:"required,cpf"`
	Password string `json:"password" label:"Senha" validate:"required,min=6,max=100"`
	Email    string `json:"email" label:"Email" validate:"required,email"`
}

type authRequest struct {
	Email    string `json:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" label:"Senha" validate:"required"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}
