package common

// CredentialKey is the single well-known key under which the client keeps
// its durable credential record.
const CredentialKey = "credential"
