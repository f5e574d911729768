package test

import "github.com/google/uuid"

// CustomerID is a helper function which creates deterministic customer UUIDs.
func CustomerID(value string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("customer:"+value)).String()
}

// ProviderID is a helper function which creates deterministic provider UUIDs.
func ProviderID(value string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("provider:"+value)).String()
}
