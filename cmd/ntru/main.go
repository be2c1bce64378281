// Command ntru is a small file encryption tool built on the NTRUEncrypt
// engine: it generates key pairs, encrypts and decrypts files in place, and
// reports the fixed parameter set. Keys are exchanged as base64 text files.
package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/sv512/ntru/ntru"
	"github.com/sv512/ntru/utils/sampling"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	params, err := ntru.NewParametersFromLiteral(ntru.DefaultParameters)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid built-in parameter set")
	}

	app := &cli.App{
		Name:  "ntru",
		Usage: "NTRUEncrypt key generation, file encryption and decryption",
		Commands: []*cli.Command{
			{
				Name:      "gen",
				Usage:     "generate a key pair, or a new public key from an existing private key file",
				ArgsUsage: "[private-key-file]",
				Action: func(c *cli.Context) error {
					return runGen(params, c)
				},
			},
			{
				Name:      "enc",
				Usage:     "encrypt a file in place using a public key",
				ArgsUsage: "<file> <public-key-file>",
				Action: func(c *cli.Context) error {
					return runEnc(params, c)
				},
			},
			{
				Name:      "dec",
				Usage:     "decrypt a file in place using a private key",
				ArgsUsage: "<file> <private-key-file>",
				Action: func(c *cli.Context) error {
					return runDec(params, c)
				},
			},
			{
				Name:  "info",
				Usage: "print the fixed parameter set",
				Action: func(c *cli.Context) error {
					return runInfo(params)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runGen(params ntru.Parameters, c *cli.Context) error {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return err
	}

	if c.NArg() > 0 {
		// Derive a fresh public key for an existing private key.
		sk, err := readPrivateKey(params, c.Args().Get(0))
		if err != nil {
			return err
		}
		pk, err := ntru.NewKeyGenerator(params, prng).GenPublicKey(sk)
		if err != nil {
			return err
		}
		return printPublicKey(params, pk)
	}

	sk, pk, err := ntru.GenerateKeyPair(params, prng)
	if err != nil {
		return err
	}
	if err := printPublicKey(params, pk); err != nil {
		return err
	}
	fmt.Println()

	raw, err := sk.Export(params)
	if err != nil {
		return err
	}
	fmt.Println("----------------- Private Key -----------------")
	fmt.Println(base64.StdEncoding.EncodeToString(raw))
	return nil
}

func runEnc(params ntru.Parameters, c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: enc <file> <public-key-file>")
	}
	file := c.Args().Get(0)

	pk, err := readPublicKey(params, c.Args().Get(1))
	if err != nil {
		return err
	}
	plaintext, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file, err)
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		return err
	}
	ct, err := ntru.Encrypt(params, pk, plaintext, prng)
	if err != nil {
		return err
	}
	raw, err := ct.Export(params)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, raw, 0o600); err != nil {
		return fmt.Errorf("cannot write %s: %w", file, err)
	}
	log.Info().Str("file", file).Int("bytes", len(raw)).Msg("encrypted")
	return nil
}

func runDec(params ntru.Parameters, c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: dec <file> <private-key-file>")
	}
	file := c.Args().Get(0)

	sk, err := readPrivateKey(params, c.Args().Get(1))
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file, err)
	}
	ct, err := ntru.ImportCiphertext(params, raw)
	if err != nil {
		return err
	}

	plaintext, err := ntru.Decrypt(params, sk, ct)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, plaintext, 0o600); err != nil {
		return fmt.Errorf("cannot write %s: %w", file, err)
	}
	log.Info().Str("file", file).Int("bytes", len(plaintext)).Msg("decrypted")
	return nil
}

func runInfo(params ntru.Parameters) error {
	d := params.Describe()
	fmt.Printf("     parameter set name :: %s\n", d.Name)
	fmt.Printf("polynomial coefficients :: %d = N\n", d.N)
	fmt.Printf("        smaller modulus :: %d   = p\n", d.P)
	fmt.Printf("         larger modulus :: %d = q\n", d.Q)
	fmt.Printf("               f weight :: +1 x %d, -1 x %d\n", d.Df.Ones, d.Df.MinusOnes)
	fmt.Printf("               g weight :: +1 x %d, -1 x %d\n", d.Dg.Ones, d.Dg.MinusOnes)
	fmt.Printf("               r weight :: +1 x %d, -1 x %d\n", d.Dr.Ones, d.Dr.MinusOnes)
	fmt.Printf("      public key length :: %d\n", d.PublicKeyLen)
	fmt.Printf("     private key length :: %d\n", d.PrivateKeyLen)
	fmt.Printf("      ciphertext length :: %d\n", d.CiphertextLen)
	fmt.Printf("   max plaintext length :: %d\n", d.MaxMessageBytes)
	return nil
}

func printPublicKey(params ntru.Parameters, pk *ntru.PublicKey) error {
	raw, err := pk.Export(params)
	if err != nil {
		return err
	}
	fmt.Println("----------------- Public Key ------------------")
	fmt.Println(base64.StdEncoding.EncodeToString(raw))
	return nil
}

func readKeyFile(path string) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read key file %s: %w", path, err)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 in key file %s: %w", path, err)
	}
	return raw, nil
}

func readPublicKey(params ntru.Parameters, path string) (*ntru.PublicKey, error) {
	raw, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	return ntru.ImportPublicKey(params, raw)
}

func readPrivateKey(params ntru.Parameters, path string) (*ntru.PrivateKey, error) {
	raw, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	return ntru.ImportPrivateKey(params, raw)
}
