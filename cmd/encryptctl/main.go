package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	encrypt "github.com/vaultsandbox/encrypt-go"
)

// encryptctl is a small operational front end for the encrypt library:
// generate keys, encrypt and decrypt files, and manage password-protected
// keys. Secrets come from the environment (optionally via a .env file) so
// they never appear in process listings:
//
//	ENCRYPT_KEY_FILE  path to a file holding a saved key
//	ENCRYPT_PASSWORD  password for the password-based commands
func main() {
	if len(os.Args) < 2 {
		fatal("usage: encryptctl <keygen|encrypt|decrypt|protect|unlock> [args]")
	}

	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "keygen":
		keygen()
	case "encrypt":
		if len(os.Args) < 4 {
			fatal("usage: encryptctl encrypt <in> <out>")
		}
		runFile(encrypt.EncryptFile, encrypt.EncryptFileWithPassword, os.Args[2], os.Args[3])
	case "decrypt":
		if len(os.Args) < 4 {
			fatal("usage: encryptctl decrypt <in> <out>")
		}
		runFile(encrypt.DecryptFile, encrypt.DecryptFileWithPassword, os.Args[2], os.Args[3])
	case "protect":
		protect()
	case "unlock":
		if len(os.Args) < 3 {
			fatal("usage: encryptctl unlock <protected-key-file>")
		}
		unlock(os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

// keygen prints a fresh saved key to stdout.
func keygen() {
	key, err := encrypt.GenerateKey()
	if err != nil {
		fatal("generate key: %v", err)
	}
	defer key.Wipe()

	saved, err := key.SaveToAsciiSafeString()
	if err != nil {
		fatal("save key: %v", err)
	}
	fmt.Println(saved)
}

// runFile dispatches a file operation to the key or password variant
// depending on which secret the environment provides. A key takes
// precedence when both are set.
func runFile(withKey func(string, string, *encrypt.Key) error, withPassword func(string, string, []byte) error, inPath, outPath string) {
	if keyFile := os.Getenv("ENCRYPT_KEY_FILE"); keyFile != "" {
		key := loadKey(keyFile)
		defer key.Wipe()
		if err := withKey(inPath, outPath, key); err != nil {
			fatal("%s: %v", inPath, err)
		}
		return
	}

	if password := os.Getenv("ENCRYPT_PASSWORD"); password != "" {
		if err := withPassword(inPath, outPath, []byte(password)); err != nil {
			fatal("%s: %v", inPath, err)
		}
		return
	}

	fatal("set ENCRYPT_KEY_FILE or ENCRYPT_PASSWORD")
}

// protect generates a fresh key wrapped under ENCRYPT_PASSWORD and prints
// its saved form to stdout.
func protect() {
	password := os.Getenv("ENCRYPT_PASSWORD")
	if password == "" {
		fatal("set ENCRYPT_PASSWORD")
	}

	protected, err := encrypt.CreateKeyProtectedByPassword([]byte(password))
	if err != nil {
		fatal("create protected key: %v", err)
	}

	saved, err := protected.SaveToAsciiSafeString()
	if err != nil {
		fatal("save protected key: %v", err)
	}
	fmt.Println(saved)
}

// unlock recovers the inner key from a saved protected key and prints its
// saved form, so it can be fed back through ENCRYPT_KEY_FILE.
func unlock(path string) {
	password := os.Getenv("ENCRYPT_PASSWORD")
	if password == "" {
		fatal("set ENCRYPT_PASSWORD")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read protected key: %v", err)
	}

	protected, err := encrypt.LoadKeyProtectedByPasswordFromAsciiSafeString(string(data))
	if err != nil {
		fatal("load protected key: %v", err)
	}

	key, err := protected.Unlock([]byte(password))
	if err != nil {
		fatal("unlock: %v", err)
	}
	defer key.Wipe()

	saved, err := key.SaveToAsciiSafeString()
	if err != nil {
		fatal("save key: %v", err)
	}
	fmt.Println(saved)
}

func loadKey(path string) *encrypt.Key {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read key file: %v", err)
	}

	key, err := encrypt.LoadKeyFromAsciiSafeString(strings.TrimSpace(string(data)))
	if err != nil {
		fatal("load key: %v", err)
	}
	return key
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
