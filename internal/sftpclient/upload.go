package sftpclient

import (
	"context"
	"fmt"
	"net"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const dialTimeout = 20 * time.Second

type Config struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	RemoteDir             string
	InsecureIgnoreHostKey bool
	// KnownHostsPath defaults to ~/.ssh/known_hosts.
	KnownHostsPath string
}

func (cfg Config) validate() error {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("sftp: missing host, user or SFTP_PASS")
	}
	return nil
}

func (cfg Config) addr() string {
	port := cfg.Port
	if port <= 0 {
		port = 22
	}
	return net.JoinHostPort(cfg.Host, strconv.Itoa(port))
}

func (cfg Config) remoteDir() string {
	if cfg.RemoteDir == "" {
		return "/"
	}
	return cfg.RemoteDir
}

func (cfg Config) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	known := cfg.KnownHostsPath
	if known == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("sftp: locate known_hosts: %w", err)
		}
		known = filepath.Join(home, ".ssh", "known_hosts")
	}
	cb, err := knownhosts.New(known)
	if err != nil {
		return nil, fmt.Errorf("sftp: load known_hosts: %w", err)
	}
	return cb, nil
}

// Uploader is one authenticated SFTP session. Reports of a run share it.
type Uploader struct {
	conn      *ssh.Client
	client    *sftp.Client
	remoteDir string
}

// Dial connects, authenticates and makes sure the remote directory exists.
// ctx bounds the TCP connect and the SSH handshake.
func Dial(ctx context.Context, cfg Config) (*Uploader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cb, err := cfg.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	addr := cfg.addr()
	d := net.Dialer{Timeout: dialTimeout}
	raw, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("sftp: dial %s: %w", addr, err)
	}

	// the handshake itself does not watch ctx
	deadline := time.Now().Add(dialTimeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	raw.SetDeadline(deadline)

	sshConn, chans, reqs, err := ssh.NewClientConn(raw, addr, &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
	})
	if err != nil {
		raw.Close()
		return nil, fmt.Errorf("sftp: handshake with %s: %w", addr, err)
	}
	raw.SetDeadline(time.Time{})
	conn := ssh.NewClient(sshConn, chans, reqs)

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("sftp: new client: %w", err)
	}

	u := &Uploader{conn: conn, client: client, remoteDir: cfg.remoteDir()}
	if err := client.MkdirAll(u.remoteDir); err != nil {
		u.Close()
		return nil, fmt.Errorf("sftp: mkdir %s: %w", u.remoteDir, err)
	}
	return u, nil
}

// Upload copies localPath into the remote directory as remoteName,
// replacing a remote file of the same name.
func (u *Uploader) Upload(localPath, remoteName string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open %s: %w", localPath, err)
	}
	defer src.Close()

	remotePath := path.Join(u.remoteDir, remoteName)
	dst, err := u.client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create %s: %w", remotePath, err)
	}
	if _, err := dst.ReadFrom(src); err != nil {
		dst.Close()
		return fmt.Errorf("sftp: write %s: %w", remotePath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close %s: %w", remotePath, err)
	}
	return nil
}

func (u *Uploader) Close() error {
	err := u.client.Close()
	if cerr := u.conn.Close(); err == nil {
		err = cerr
	}
	return err
}

// UploadFiles sends every file under its base name over a single session.
// It stops at the first failure and returns how many files were sent.
func UploadFiles(ctx context.Context, cfg Config, paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}
	u, err := Dial(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer u.Close()

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := u.Upload(p, filepath.Base(p)); err != nil {
			return i, err
		}
	}
	return len(paths), nil
}
