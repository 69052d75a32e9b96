package dto

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateProfileRequest uses pointers so omitted fields are left untouched.
type UpdateProfileRequest struct {
	CompanyName      *string `json:"companyName"`
	BusinessCategory *string `json:"businessCategory"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	GSTNumber        *string `json:"gstNumber"`
}
