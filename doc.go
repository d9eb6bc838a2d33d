// Package pasteportal provides a Go client SDK for PastePortal,
// a hosted paste-sharing service.
//
// The SDK stores and fetches pastes through the PastePortal REST API
// and adds client-side password protection: content is encrypted with
// PBKDF2-derived AES-256-CBC before it leaves the process, producing
// an envelope the web and VS Code clients can open with the same
// password.
//
// Basic usage:
//
//	client, err := pasteportal.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store a paste
//	receipt, err := client.CreatePaste(ctx, "hello world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Share:", client.ShareURL(receipt.ID))
//
//	// Fetch it back
//	paste, err := client.GetPaste(ctx, receipt.ID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(paste.Content)
//
// Password protection:
//
//	receipt, err := client.CreateProtectedPaste(ctx, "Sup3rSecret!", "the plan")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	paste, err := client.GetProtectedPaste(ctx, receipt.ID, "Sup3rSecret!")
//	if errors.Is(err, pasteportal.ErrDecryptionFailed) {
//	    // wrong password, corrupted envelope: indistinguishable
//	}
//
// EncryptWithPassword and DecryptWithPassword are available without a
// Client for callers that handle storage themselves.
package pasteportal
