package model

type Customer struct {
	BaseModel
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	Phone       string  `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
}

func (c Customer) Clone() Customer {
	c.Email = clonePtr(c.Email)
	c.Address = clonePtr(c.Address)
	c.DateOfBirth = clonePtr(c.DateOfBirth)
	return c
}

// CustomerPatch is a partial update. Nil fields are left untouched.
type CustomerPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,min=1"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,date"`
}

func (p *CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = p.Address
	}
	if p.DateOfBirth != nil {
		c.DateOfBirth = p.DateOfBirth
	}
}
