package usecase

import "github.com/shopline/storefront/internal/domain/model"

// ScopeFor derives the order/invoice visibility scope for a requester.
// Customers and support see only their own orders; admins see all.
// Anything else falls back to the most restrictive case.
func ScopeFor(req model.Requester) model.Scope {
	switch req.Role {
	case model.RoleAdmin, model.RoleSuperadmin:
		return model.Scope{All: true}
	default:
		return model.Scope{OwnerID: req.UserID}
	}
}

// CanTransitionOrders reports whether the role may change order status.
func CanTransitionOrders(role model.Role) bool {
	return role == model.RoleAdmin || role == model.RoleSuperadmin
}

// CanDeleteOrders reports whether the role may delete orders.
func CanDeleteOrders(role model.Role) bool {
	return role == model.RoleSuperadmin
}

// CanManageCatalog reports whether the role may mutate users and products.
func CanManageCatalog(role model.Role) bool {
	return role == model.RoleAdmin || role == model.RoleSuperadmin
}
