package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ultracoach/ultracoach/pkg/jwtx"
)

const sessionKeyID = "session-key"

// InitSessionSigner loads the Ed25519 session signing key. With a key
// file configured the key survives restarts (generated on first boot);
// otherwise an ephemeral key is used and every session dies with the
// process.
func InitSessionSigner(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, error) {
	if cfg.SessionKeyFile == "" {
		pemKey, err := jwtx.GenerateEd25519PEM()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		logger.Warn("using ephemeral session key, sessions will not survive restarts")
		return jwtx.NewSignerEdDSA(sessionKeyID, pemKey)
	}

	pemKey, err := os.ReadFile(cfg.SessionKeyFile)
	if os.IsNotExist(err) {
		pemKey, err = jwtx.GenerateEd25519PEM()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		if err := os.WriteFile(cfg.SessionKeyFile, pemKey, 0600); err != nil {
			return nil, fmt.Errorf("failed to persist session key: %w", err)
		}
		logger.Info("generated new session key", "path", cfg.SessionKeyFile)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read session key: %w", err)
	}

	return jwtx.NewSignerEdDSA(sessionKeyID, pemKey)
}
