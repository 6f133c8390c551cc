package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-github/v59/github"
	"golang.org/x/oauth2"
)

// Bukti struk disimpan sebagai file di repo GitHub publik, link raw-nya
// ditempel ke transaksi. Konfigurasi lewat env GH_ACCESS_TOKEN, GH_OWNER,
// GH_REPO.

func CalculateHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// GithubUpload menaruh (atau menimpa) file di path tertentu dan
// mengembalikan URL download-nya.
func GithubUpload(ctx context.Context, content []byte, path string) (string, error) {
	token := os.Getenv("GH_ACCESS_TOKEN")
	owner := os.Getenv("GH_OWNER")
	repo := os.Getenv("GH_REPO")
	if token == "" || owner == "" || repo == "" {
		return "", errors.New("GH_ACCESS_TOKEN, GH_OWNER, GH_REPO belum diset")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	opts := &github.RepositoryContentFileOptions{
		Message: github.String("upload bukti struk " + path),
		Content: content,
	}

	// Kalau file sudah ada (isi sama di-hash ke nama yang sama), perlu SHA
	// lama supaya jadi update, bukan error.
	existing, _, _, err := client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err == nil && existing != nil {
		opts.SHA = existing.SHA
	}

	res, _, err := client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	if err != nil {
		return "", fmt.Errorf("gagal upload ke GitHub: %w", err)
	}
	if res.Content != nil && res.Content.DownloadURL != nil {
		return *res.Content.DownloadURL, nil
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/main/%s", owner, repo, path), nil
}
