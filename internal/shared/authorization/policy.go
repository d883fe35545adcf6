package authorization

// OwnedResource is implemented by any entity whose creation is attributed
// to a single user (ticket creator, feature request requester, comment
// author, attachment uploader).
type OwnedResource interface {
	GetOwnerID() uint
}

// CanAccessResource reports whether the subject may act on the resource.
// Admins always may; everyone else only on resources they own.
//
// Callers must check resource existence first: NotFound is reported before
// any denial so an unauthorized caller cannot probe for existence.
func CanAccessResource(subjectID uint, role UserRole, resource OwnedResource) bool {
	if role.IsAdmin() {
		return true
	}
	return subjectID == resource.GetOwnerID()
}

// CanAccessResourceByOwnerID is the same check when only the owner ID is at hand.
func CanAccessResourceByOwnerID(subjectID uint, role UserRole, resourceOwnerID uint) bool {
	if role.IsAdmin() {
		return true
	}
	return subjectID == resourceOwnerID
}
