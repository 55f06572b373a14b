package model

type Supplier struct {
	BaseModel
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	Phone         string  `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
}

func (s Supplier) Clone() Supplier {
	s.Email = clonePtr(s.Email)
	s.Address = clonePtr(s.Address)
	s.ContactPerson = clonePtr(s.ContactPerson)
	return s
}

// SupplierPatch is a partial update. Nil fields are left untouched.
type SupplierPatch struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,min=1"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
}

func (p *SupplierPatch) Apply(s *Supplier) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = p.Address
	}
	if p.ContactPerson != nil {
		s.ContactPerson = p.ContactPerson
	}
}
