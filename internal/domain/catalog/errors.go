package catalog

import "github.com/BruksfildServices01/profile-catalog/internal/httperr"

var (
	ErrProfileNotFound     = httperr.ErrBusiness("profile_not_found")
	ErrServiceNotFound     = httperr.ErrBusiness("service_not_found")
	ErrPhotoNotFound       = httperr.ErrBusiness("photo_not_found")
	ErrPriceNotFound       = httperr.ErrBusiness("price_not_found")
	ErrAssociationNotFound = httperr.ErrBusiness("association_not_found")
)
