package auth

import (
	"strings"

	"lanchonete-backend/internal/config"
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type CadastroPessoaRequest struct {
	Nome    string  `json:"nome_pessoa"`
	CPF     string  `json:"cpf"`
	Email   string  `json:"email"`
	Papel   string  `json:"papel"`
	Senha   string  `json:"senha"`
	Salario float64 `json:"salario"`
}

type PessoaResponse struct {
	ID      uint    `json:"id_pessoa"`
	Nome    string  `json:"nome_pessoa"`
	CPF     *string `json:"cpf"`
	Email   string  `json:"email"`
	Papel   string  `json:"papel"`
	Salario float64 `json:"salario"`
	Status  string  `json:"status_pessoa"`
}

func pessoaToResponse(p *models.Pessoa) PessoaResponse {
	return PessoaResponse{
		ID:      p.ID,
		Nome:    p.Nome,
		CPF:     p.CPF,
		Email:   p.Email,
		Papel:   string(p.Papel),
		Salario: p.Salario.InexactFloat64(),
		Status:  p.Status,
	}
}

func papelValido(p string) bool {
	switch models.Papel(p) {
	case models.PapelAdmin, models.PapelGarcom, models.PapelCozinha, models.PapelCliente:
		return true
	}
	return false
}

func cpfValido(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// POST /api/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Senha == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email e senha são obrigatórios")
		}

		var pessoa models.Pessoa
		if err := database.DB.First(&pessoa, "email = ?", body.Email).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(pessoa.SenhaHash), []byte(body.Senha)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		token, err := GenerateToken(cfg.JWTSecret, &pessoa)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(fiber.Map{
			"access_token": token,
			"papel":        pessoa.Papel,
			"nome":         pessoa.Nome,
		})
	}
}

// POST /api/pessoas
func CadastroPessoaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CadastroPessoaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Nome == "" || body.Email == "" || body.Senha == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome, email e senha são obrigatórios")
		}

		papel := body.Papel
		if papel == "" {
			papel = string(models.PapelCliente)
		}
		if !papelValido(papel) {
			return fiber.NewError(fiber.StatusBadRequest, "Papel inválido")
		}

		// Admin precisa de CPF válido; para os demais o CPF é descartado
		var cpf *string
		if papel == string(models.PapelAdmin) {
			if !cpfValido(body.CPF) {
				return fiber.NewError(fiber.StatusBadRequest, "O CPF do admin deve conter exatamente 11 dígitos numéricos")
			}
			cpf = &body.CPF
		}

		var count int64
		database.DB.Model(&models.Pessoa{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Usuário já existe")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Senha), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		pessoa := models.Pessoa{
			Nome:      body.Nome,
			CPF:       cpf,
			Email:     body.Email,
			SenhaHash: string(hash),
			Papel:     models.Papel(papel),
			Salario:   decimal.NewFromFloat(body.Salario),
			Status:    "Ativo",
		}

		if err := database.DB.Create(&pessoa).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": "Usuário criado com sucesso",
			"pessoa":  pessoaToResponse(&pessoa),
		})
	}
}

// GET /api/pessoas
func ListPessoasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var pessoas []models.Pessoa
		if err := database.DB.Order("nome").Find(&pessoas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as pessoas")
		}

		resp := make([]PessoaResponse, 0, len(pessoas))
		for i := range pessoas {
			resp = append(resp, pessoaToResponse(&pessoas[i]))
		}
		return c.JSON(fiber.Map{"pessoas": resp})
	}
}

type UpdatePessoaRequest struct {
	Nome    *string  `json:"nome_pessoa"`
	Papel   *string  `json:"papel"`
	Salario *float64 `json:"salario"`
	Status  *string  `json:"status_pessoa"`
	Senha   *string  `json:"senha"`
}

// PUT /api/pessoas/:id
func UpdatePessoaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdatePessoaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var pessoa models.Pessoa
		if err := database.DB.First(&pessoa, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pessoa não encontrada")
		}

		if body.Nome != nil {
			pessoa.Nome = *body.Nome
		}
		if body.Papel != nil {
			if !papelValido(*body.Papel) {
				return fiber.NewError(fiber.StatusBadRequest, "Papel inválido")
			}
			pessoa.Papel = models.Papel(*body.Papel)
		}
		if body.Salario != nil {
			pessoa.Salario = decimal.NewFromFloat(*body.Salario)
		}
		if body.Status != nil {
			pessoa.Status = *body.Status
		}
		if body.Senha != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Senha), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
			}
			pessoa.SenhaHash = string(hash)
		}

		if err := database.DB.Save(&pessoa).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a pessoa")
		}

		return c.JSON(fiber.Map{
			"success": "Pessoa atualizada com sucesso",
			"pessoa":  pessoaToResponse(&pessoa),
		})
	}
}

// GET /api/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idVal := c.Locals(CtxPessoaIDKey)
		id, ok := idVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o usuário")
		}

		var pessoa models.Pessoa
		if err := database.DB.First(&pessoa, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pessoa não encontrada")
		}
		return c.JSON(pessoaToResponse(&pessoa))
	}
}
