package app

import (
	"fmt"

	cipherHTTP "github.com/allisson/ciphers/internal/cipher/http"
	cipherService "github.com/allisson/ciphers/internal/cipher/service"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
)

// CipherEngine returns the cipher engine instance.
func (c *Container) CipherEngine() cipherUseCase.CipherEngine {
	c.cipherEngineInit.Do(func() {
		c.cipherEngine = cipherService.NewEngine()
	})
	return c.cipherEngine
}

// CipherUseCase returns the cipher use case, wrapped with metrics when they are enabled.
func (c *Container) CipherUseCase() (cipherUseCase.CipherUseCase, error) {
	c.cipherUseCaseInit.Do(func() {
		var err error
		c.cipherUseCase, err = c.initCipherUseCase()
		if err != nil {
			c.storeErr("cipherUseCase", err)
		}
	})
	if err := c.loadErr("cipherUseCase"); err != nil {
		return nil, err
	}
	return c.cipherUseCase, nil
}

// CipherHandler returns the cipher HTTP handler instance.
func (c *Container) CipherHandler() (*cipherHTTP.CipherHandler, error) {
	c.cipherHandlerInit.Do(func() {
		var err error
		c.cipherHandler, err = c.initCipherHandler()
		if err != nil {
			c.storeErr("cipherHandler", err)
		}
	})
	if err := c.loadErr("cipherHandler"); err != nil {
		return nil, err
	}
	return c.cipherHandler, nil
}

// initCipherUseCase creates the cipher use case with its batch limits.
func (c *Container) initCipherUseCase() (cipherUseCase.CipherUseCase, error) {
	useCase := cipherUseCase.NewCipherUseCase(
		c.CipherEngine(),
		c.config.BatchMaxItems,
		c.config.BatchConcurrency,
	)

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for cipher use case: %w", err)
	}
	return cipherUseCase.NewCipherUseCaseWithMetrics(useCase, bm), nil
}

// initCipherHandler creates the cipher HTTP handler.
func (c *Container) initCipherHandler() (*cipherHTTP.CipherHandler, error) {
	useCase, err := c.CipherUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher use case for cipher handler: %w", err)
	}
	return cipherHTTP.NewCipherHandler(useCase, c.Logger()), nil
}
