package validators

const (
	loginMinLength    = 3
	loginMaxLength    = 64
	nameMaxLength     = 128
	passwordMinLength = 8
	passwordMaxBytes  = 72
)

// NewUserValidator returns the rule set applied to registration, login and
// profile update input ([models.User] and [models.UserUpdate] both implement
// [Fielder]).
//
// Fields: "login", "name", "password".
func NewUserValidator() *FieldRules {
	v := New()
	v.Field("login").Required().MinLength(loginMinLength).MaxLength(loginMaxLength)
	v.Field("name").MaxLength(nameMaxLength)
	v.Field("password").Required().MinLength(passwordMinLength).MaxBytes(passwordMaxBytes)
	return v
}
