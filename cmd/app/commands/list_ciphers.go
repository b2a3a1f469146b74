package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/allisson/ciphers/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
)

// RunListCiphers prints every supported cipher with its key format and default key.
func RunListCiphers(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	streams IOTuple,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	infos := useCase.Kinds(ctx)

	if format == "json" {
		return writeJSON(streams.Writer, dto.MapCipherInfosToListResponse(infos))
	}

	tw := tabwriter.NewWriter(streams.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CIPHER\tKEY\tDEFAULT")
	for _, info := range infos {
		def := "-"
		if info.HasDefaultKey {
			def = fmt.Sprintf("%q", info.DefaultKey)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Kind, info.KeyDescription, def)
	}
	return tw.Flush()
}
