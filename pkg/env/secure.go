package env

import (
	"bufio"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingKeyFile is returned when the key file needed for decryption
// cannot be opened.
var ErrMissingKeyFile = errors.New("missing key file for decryption")

// keySpec holds the decryption parameters parsed from a Geneos key file.
type keySpec struct {
	salt string
	key  string
	iv   string
}

// parseKeyFile reads a key file of salt=/key=/iv= lines (hex values).
// Blank and whitespace-only lines are ignored; any other assignment is a
// format error reported with its 1-based line number.
func parseKeyFile(path string) (keySpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return keySpec{}, ErrMissingKeyFile
	}
	defer file.Close()

	var spec keySpec
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch name {
		case "salt":
			spec.salt = value
		case "key":
			spec.key = value
		case "iv":
			spec.iv = value
		default:
			return keySpec{}, fmt.Errorf("key file: unexpected content at line %d: %q", lineNum, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return keySpec{}, fmt.Errorf("reading key file: %w", err)
	}

	if spec.salt == "" {
		return keySpec{}, errors.New("key file: missing salt")
	}
	if spec.key == "" {
		return keySpec{}, errors.New("key file: missing key")
	}
	if spec.iv == "" {
		return keySpec{}, errors.New("key file: missing iv")
	}
	return spec, nil
}

// Decrypt decrypts a +encs+-prefixed value using AES-256-CBC with PKCS#7
// padding. The ciphertext is the hex string after the prefix; the key and
// IV come from the given key file. Values without the prefix are returned
// unchanged.
func Decrypt(value, keyFile string) (string, error) {
	if !IsEncrypted(value) {
		return value, nil
	}

	ciphertext, err := hex.DecodeString(value[len(encryptedPrefix):])
	if err != nil {
		return "", fmt.Errorf("decrypt: invalid hex encoding: %w", err)
	}

	spec, err := parseKeyFile(keyFile)
	if err != nil {
		return "", err
	}
	key, err := hex.DecodeString(spec.key)
	if err != nil {
		return "", fmt.Errorf("decrypt: invalid key hex: %w", err)
	}
	iv, err := hex.DecodeString(spec.iv)
	if err != nil {
		return "", fmt.Errorf("decrypt: invalid iv hex: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("decrypt: invalid key length: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("decrypt: iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("decrypt: ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = stripPKCS7(plaintext)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}

// stripPKCS7 removes and validates PKCS#7 padding from a decrypted block.
func stripPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty plaintext")
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > aes.BlockSize || pad > len(data) {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-pad], nil
}

// SecureVar returns the named environment variable, decrypting it with the
// key file if it is encrypted. Missing variables are an error.
func SecureVar(name, keyFile string) (string, error) {
	value, err := Var(name)
	if err != nil {
		return "", err
	}
	if IsEncrypted(value) {
		return Decrypt(value, keyFile)
	}
	return value, nil
}

// SecureVarOr is like SecureVar but returns fallback when the variable is
// not set. Decryption failures still propagate as errors.
func SecureVarOr(name, keyFile, fallback string) (string, error) {
	value, err := Var(name)
	if errors.Is(err, ErrNotSet) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	if IsEncrypted(value) {
		return Decrypt(value, keyFile)
	}
	return value, nil
}
