package types

// ProviderCode identifies a kind of infrastructure provider.
type ProviderCode string

const (
	// AWS is the code for Amazon Web Services
	AWS ProviderCode = "aws"
	// Docker is the code for providers running on the local Docker daemon
	Docker ProviderCode = "docker"
	// GCP is the code for Google Cloud Platform
	GCP ProviderCode = "gcp"
)

// String converts a provider code to string
func (c ProviderCode) String() string {
	return string(c)
}

// ProviderType describes a provider choice offered to a user.
type ProviderType struct {
	Code ProviderCode `json:"code"`
	Name string       `json:"name"`
}

var providerTypes = [...]ProviderType{
	{Code: AWS, Name: "Amazon"},
	{Code: Docker, Name: "Docker Localhost"},
	{Code: GCP, Name: "Google"},
}

// ProviderTypes returns all supported provider types in display order. The returned slice is a copy.
func ProviderTypes() []ProviderType {
	result := make([]ProviderType, len(providerTypes))
	copy(result, providerTypes[:])
	return result
}

// FindProviderType looks up the provider type with the given code.
func FindProviderType(code ProviderCode) (ProviderType, bool) {
	for _, t := range providerTypes {
		if t.Code == code {
			return t, true
		}
	}
	return ProviderType{}, false
}

// IsValid returns true when the code is part of the provider type table
func (c ProviderCode) IsValid() bool {
	_, ok := FindProviderType(c)
	return ok
}
