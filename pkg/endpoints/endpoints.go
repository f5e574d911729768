package endpoints

// CustomerIDKey is the storage key under which the current customer identifier is kept.
const CustomerIDKey = "customer_id"

// MissingValue is what an absent storage value renders as.
const MissingValue = "null"

// Storage is a persistent key/value store holding client state, like the customer identifier.
type Storage interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)
}

// CustomerID returns the customer identifier held by the storage or MissingValue when there is none.
func CustomerID(storage Storage) string {
	if value, ok := storage.Get(CustomerIDKey); ok {
		return value
	}
	return MissingValue
}

// CustomerEndpoint composes {root}/customers/{customerID}
func CustomerEndpoint(rootURL string, customerID string) string {
	return rootURL + "/customers/" + customerID
}

// ProvidersEndpoint composes {root}/customers/{customerID}/providers
func ProvidersEndpoint(rootURL string, customerID string) string {
	return CustomerEndpoint(rootURL, customerID) + "/providers"
}

// ProviderEndpoint composes {root}/customers/{customerID}/providers/{providerID}. No validation or escaping is done.
func ProviderEndpoint(rootURL string, customerID string, providerID string) string {
	return ProvidersEndpoint(rootURL, customerID) + "/" + providerID
}
