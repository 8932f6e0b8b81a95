package docs

import (
	"slices"
	"strconv"

	"github.com/MKhiriev/go-api-starter/models"
)

const (
	bearerAuth = "bearerAuth"
	appJSON    = "application/json"

	tagAuth  = "auth"
	tagUsers = "users"
	tagMeta  = "meta"
)

// NewSpec builds the OpenAPI document describing every public route of the
// API.
func NewSpec(info Info) *Document {
	if info.Title == "" {
		info.Title = "go-api-starter"
	}
	if info.Version == "" {
		info.Version = "dev"
	}

	return &Document{
		OpenAPI: OpenAPIVersion,
		Info:    info,
		Tags: []Tag{
			{Name: tagAuth, Description: "Registration and token issuance"},
			{Name: tagUsers, Description: "User accounts"},
			{Name: tagMeta, Description: "Service health and version"},
		},
		Paths: map[string]*PathItem{
			"/api/auth/register": {
				Post: &Operation{
					Tags:        []string{tagAuth},
					Summary:     "Register a new user and issue an access token",
					OperationID: "register",
					RequestBody: jsonBody("RegisterRequest"),
					Responses: map[string]Response{
						"201": jsonResponse("User registered", "TokenResponse"),
						"400": errorResponse("Invalid request body or fields"),
						"409": errorResponse("Login already exists"),
						"429": errorResponse("Too many requests"),
					},
				},
			},
			"/api/auth/login": {
				Post: &Operation{
					Tags:        []string{tagAuth},
					Summary:     "Exchange login and password for an access token",
					OperationID: "login",
					RequestBody: jsonBody("LoginRequest"),
					Responses: map[string]Response{
						"200": jsonResponse("Authenticated", "TokenResponse"),
						"400": errorResponse("Invalid request body"),
						"401": errorResponse("Invalid login/password"),
						"429": errorResponse("Too many requests"),
					},
				},
			},
			"/api/auth/me": {
				Get: &Operation{
					Tags:        []string{tagAuth},
					Summary:     "Current user",
					OperationID: "me",
					Security:    bearer(),
					Responses: map[string]Response{
						"200": jsonResponse("Current user", "User"),
						"401": errorResponse("Missing, invalid or expired token"),
					},
				},
			},
			"/api/users": {
				Get: &Operation{
					Tags:        []string{tagUsers},
					Summary:     "List users",
					OperationID: "listUsers",
					Security:    bearer(),
					Parameters: []Parameter{
						{
							Name:        "limit",
							In:          "query",
							Description: "Page size",
							Schema: &Schema{
								Type:    "integer",
								Minimum: intPtr(1),
								Maximum: intPtr(models.MaxPageLimit),
								Default: models.DefaultPageLimit,
							},
						},
						{
							Name:        "offset",
							In:          "query",
							Description: "Number of users to skip",
							Schema:      &Schema{Type: "integer", Minimum: intPtr(0), Default: 0},
						},
					},
					Responses: map[string]Response{
						"200": jsonResponse("A page of users", "UsersPage"),
						"400": errorResponse("Invalid paging parameters"),
						"401": errorResponse("Missing, invalid or expired token"),
					},
				},
			},
			"/api/users/{id}": {
				Get: &Operation{
					Tags:        []string{tagUsers},
					Summary:     "Get a user",
					OperationID: "getUser",
					Security:    bearer(),
					Parameters:  []Parameter{userIDParam()},
					Responses: map[string]Response{
						"200": jsonResponse("User", "User"),
						"400": errorResponse("Invalid user ID"),
						"401": errorResponse("Missing, invalid or expired token"),
						"404": errorResponse("User not found"),
					},
				},
				Patch: &Operation{
					Tags:        []string{tagUsers},
					Summary:     "Update the caller's profile",
					OperationID: "updateUser",
					Security:    bearer(),
					Parameters:  []Parameter{userIDParam()},
					RequestBody: jsonBody("UserUpdate"),
					Responses: map[string]Response{
						"200": jsonResponse("Updated user", "User"),
						"400": errorResponse("Invalid user ID, empty update or invalid fields"),
						"401": errorResponse("Missing, invalid or expired token"),
						"403": errorResponse("Access denied"),
						"404": errorResponse("User not found"),
					},
				},
				Delete: &Operation{
					Tags:        []string{tagUsers},
					Summary:     "Delete the caller's account",
					OperationID: "deleteUser",
					Security:    bearer(),
					Parameters:  []Parameter{userIDParam()},
					Responses: map[string]Response{
						"204": {Description: "User deleted"},
						"400": errorResponse("Invalid user ID"),
						"401": errorResponse("Missing, invalid or expired token"),
						"403": errorResponse("Access denied"),
						"404": errorResponse("User not found"),
					},
				},
			},
			"/api/health": {
				Get: &Operation{
					Tags:        []string{tagMeta},
					Summary:     "Health check",
					OperationID: "health",
					Responses: map[string]Response{
						"200": jsonResponse("Service is healthy", "HealthResponse"),
						"503": jsonResponse("A dependency is unavailable", "HealthResponse"),
					},
				},
			},
			"/api/version": {
				Get: &Operation{
					Tags:        []string{tagMeta},
					Summary:     "Application version and build info",
					OperationID: "version",
					Responses: map[string]Response{
						"200": jsonResponse("Version", "VersionResponse"),
						"500": errorResponse("Version is not specified"),
					},
				},
			},
		},
		Components: Components{
			Schemas: schemas(),
			SecuritySchemes: map[string]SecurityScheme{
				bearerAuth: {
					Type:         "http",
					Scheme:       "bearer",
					BearerFormat: "JWT",
					Description:  "Access token from /api/auth/register or /api/auth/login",
				},
			},
		},
	}
}

func schemas() map[string]*Schema {
	str := func(description string) *Schema { return &Schema{Type: "string", Description: description} }
	dateTime := &Schema{Type: "string", Format: "date-time"}

	return map[string]*Schema{
		"User": {
			Type:     "object",
			Required: []string{"id", "login", "name", "created_at", "updated_at"},
			Properties: map[string]*Schema{
				"id":         {Type: "integer", Format: "int64"},
				"login":      str("Unique login"),
				"name":       str("Display name"),
				"created_at": dateTime,
				"updated_at": dateTime,
			},
		},
		"RegisterRequest": {
			Type:     "object",
			Required: []string{"login", "password"},
			Properties: map[string]*Schema{
				"login":    {Type: "string", MinLength: 3, MaxLength: 64},
				"name":     {Type: "string", MaxLength: 128},
				"password": {Type: "string", Format: "password", MinLength: 8, MaxLength: 72},
			},
		},
		"LoginRequest": {
			Type:     "object",
			Required: []string{"login", "password"},
			Properties: map[string]*Schema{
				"login":    {Type: "string"},
				"password": {Type: "string", Format: "password"},
			},
		},
		"UserUpdate": {
			Type: "object",
			Properties: map[string]*Schema{
				"name":     {Type: "string", MaxLength: 128},
				"password": {Type: "string", Format: "password", MinLength: 8, MaxLength: 72},
			},
		},
		"TokenResponse": {
			Type:     "object",
			Required: []string{"access_token", "token_type", "expires_at"},
			Properties: map[string]*Schema{
				"access_token": str("Signed JWT"),
				"token_type":   {Type: "string", Enum: []string{models.TokenTypeBearer}},
				"expires_at":   dateTime,
			},
		},
		"UsersPage": {
			Type:     "object",
			Required: []string{"users", "limit", "offset"},
			Properties: map[string]*Schema{
				"users":  {Type: "array", Items: ref("User")},
				"limit":  {Type: "integer"},
				"offset": {Type: "integer"},
			},
		},
		"ErrorResponse": {
			Type:     "object",
			Required: []string{"error"},
			Properties: map[string]*Schema{
				"error": str("Human-readable error message"),
			},
		},
		"HealthResponse": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*Schema{
				"status": {Type: "string", Enum: []string{models.HealthStatusOK, models.HealthStatusUnavailable}},
			},
		},
		"VersionResponse": {
			Type:     "object",
			Required: []string{"version"},
			Properties: map[string]*Schema{
				"version":       str("Configured or build version"),
				"build_version": str(""),
				"build_date":    str(""),
				"build_commit":  str(""),
			},
		},
	}
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonBody(schema string) *RequestBody {
	return &RequestBody{
		Required: true,
		Content:  map[string]MediaType{appJSON: {Schema: ref(schema)}},
	}
}

func jsonResponse(description, schema string) Response {
	return Response{
		Description: description,
		Content:     map[string]MediaType{appJSON: {Schema: ref(schema)}},
	}
}

func errorResponse(description string) Response {
	return jsonResponse(description, "ErrorResponse")
}

func bearer() []SecurityRequirement {
	return []SecurityRequirement{{bearerAuth: {}}}
}

func userIDParam() Parameter {
	return Parameter{
		Name:        "id",
		In:          "path",
		Description: "User ID",
		Required:    true,
		Schema:      &Schema{Type: "integer", Format: "int64", Minimum: intPtr(1)},
	}
}

func intPtr(v int) *int { return &v }

// StatusCodes lists the documented response codes of op, sorted numerically.
func StatusCodes(op *Operation) []int {
	if op == nil {
		return nil
	}

	codes := make([]int, 0, len(op.Responses))
	for code := range op.Responses {
		if n, err := strconv.Atoi(code); err == nil {
			codes = append(codes, n)
		}
	}
	slices.Sort(codes)
	return codes
}
