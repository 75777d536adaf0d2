package assembler

import "github.com/libreriasansebastian/usuarios-service/internal/domain"

const (
	RelRoles      = "roles"
	EmbeddedRoles = "rolList"
)

type RoleModel struct {
	domain.Role
	Links Links `json:"_links"`
}

type RoleAssembler struct {
	baseURL string
}

func NewRoleAssembler(baseURL string) RoleAssembler {
	return RoleAssembler{baseURL: baseURL}
}

func (a RoleAssembler) SelfURL(id int64) string {
	return resourceURL(a.baseURL, RolesPath, id)
}

func (a RoleAssembler) ToModel(role domain.Role) RoleModel {
	return RoleModel{
		Role:  role,
		Links: entityLinks(a.baseURL, RolesPath, RelRoles, role.ID),
	}
}

func (a RoleAssembler) ToCollectionModel(roles []domain.Role) CollectionModel[RoleModel] {
	models := make([]RoleModel, 0, len(roles))
	for _, role := range roles {
		models = append(models, a.ToModel(role))
	}
	return newCollection(a.baseURL, RolesPath, EmbeddedRoles, models)
}
