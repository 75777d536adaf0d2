package assembler

import "github.com/libreriasansebastian/usuarios-service/internal/domain"

const (
	RelUsuarios      = "usuarios"
	EmbeddedUsuarios = "usuarioList"
)

type UserModel struct {
	domain.User
	Links Links `json:"_links"`
}

type UserAssembler struct {
	baseURL string
}

func NewUserAssembler(baseURL string) UserAssembler {
	return UserAssembler{baseURL: baseURL}
}

func (a UserAssembler) SelfURL(id int64) string {
	return resourceURL(a.baseURL, UsuariosPath, id)
}

func (a UserAssembler) ToModel(user domain.User) UserModel {
	return UserModel{
		User:  user,
		Links: entityLinks(a.baseURL, UsuariosPath, RelUsuarios, user.ID),
	}
}

func (a UserAssembler) ToCollectionModel(users []domain.User) CollectionModel[UserModel] {
	models := make([]UserModel, 0, len(users))
	for _, user := range users {
		models = append(models, a.ToModel(user))
	}
	return newCollection(a.baseURL, UsuariosPath, EmbeddedUsuarios, models)
}
