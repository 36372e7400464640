/*
Package env reads configuration from environment variables, including
Geneos-encrypted ones, and loads .env files.

Encrypted values carry the +encs+ prefix followed by the hex-encoded
ciphertext. They are decrypted with AES-256-CBC (PKCS#7 padding) using the
parameters from a Geneos key file of the form:

	salt=89A6A795C9CCECB5
	key=26D6EDD53A0AFA8FA1AA3FBCD2FFF2A0...
	iv=472A3557ADDD2525AD4E555738636A67

Basic usage:

	import "github.com/agentstation/dataview/pkg/env"

	plain := env.VarOr("CLEAR_ENV_VAR", "default")
	secret, err := env.SecureVarOr("SECURE_ENV_VAR", "/path/to/key-file", "default")
	if err != nil {
		log.Fatal(err)
	}

Values that are not encrypted pass through Decrypt, SecureVar, and
SecureVarOr unchanged, so callers can treat every variable as potentially
encrypted.
*/
package env
