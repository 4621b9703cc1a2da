package itunes

import "github.com/jdziat/rssfeed/pkg/optional"

// Owner is an immutable <itunes:owner>.
type Owner struct {
	name  optional.Value[string]
	email optional.Value[string]
}

// Name returns the owner name, if set.
func (o Owner) Name() (string, bool) {
	return o.name.Get()
}

// Email returns the owner email, if set.
func (o Owner) Email() (string, bool) {
	return o.email.Get()
}

// OwnerBuilder configures an Owner.
type OwnerBuilder struct {
	name  optional.Value[string]
	email optional.Value[string]
}

// NewOwnerBuilder returns a builder with every field unset.
func NewOwnerBuilder() *OwnerBuilder {
	return &OwnerBuilder{}
}

// Name sets the owner name.
func (b *OwnerBuilder) Name(name string) *OwnerBuilder {
	b.name = optional.Some(name)
	return b
}

// Email sets the owner email.
func (b *OwnerBuilder) Email(email string) *OwnerBuilder {
	b.email = optional.Some(email)
	return b
}

// Validate has nothing to check; both fields are free-form.
func (b *OwnerBuilder) Validate() (*OwnerBuilder, error) {
	return b, nil
}

// Finalize constructs the Owner.
func (b *OwnerBuilder) Finalize() (Owner, error) {
	return Owner{name: b.name, email: b.email}, nil
}

// Build validates the builder and then finalizes it.
func (b *OwnerBuilder) Build() (Owner, error) {
	if _, err := b.Validate(); err != nil {
		return Owner{}, err
	}
	return b.Finalize()
}
