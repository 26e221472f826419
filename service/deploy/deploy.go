package deploy

import (
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"templedit/pathguard"
)

// ErrUnsafeFilename flags remote file names with separators or
// traversal segments.
var ErrUnsafeFilename = errors.New("invalid filename")

const dialTimeout = 10 * time.Second

// Target describes the remote host a rendered script is pushed to.
type Target struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Service copies rendered scripts to remote hosts over SFTP.
type Service struct {
	*log.Logger
}

func NewService() *Service {
	return &Service{
		Logger: log.New(log.Writer(), "[deploy] ", log.LstdFlags),
	}
}

// Push connects to the target and writes content to directory/filename,
// creating the remote directory when missing. The connection lives for
// one push only.
func (s *Service) Push(target Target, directory, filename, content string) (string, error) {
	if !pathguard.SafeFilename(filename) {
		return "", ErrUnsafeFilename
	}

	if target.Port == 0 {
		target.Port = 22
	}

	config := &ssh.ClientConfig{
		User: target.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(target.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // Note: In production, use proper host key verification
		Timeout:         dialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", target.Host, target.Port)
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer client.Close()

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		return "", fmt.Errorf("failed to create sftp client: %w", err)
	}
	defer sftpClient.Close()

	if err := sftpClient.MkdirAll(directory); err != nil {
		return "", fmt.Errorf("failed to create remote directory %s: %w", directory, err)
	}

	remotePath := path.Join(directory, filename)
	file, err := sftpClient.Create(remotePath)
	if err != nil {
		return "", fmt.Errorf("failed to create remote file %s: %w", remotePath, err)
	}
	defer file.Close()

	if _, err := file.Write([]byte(content)); err != nil {
		return "", fmt.Errorf("failed to write remote file %s: %w", remotePath, err)
	}

	s.Printf("deployed script to %s:%s", target.Host, remotePath)
	return remotePath, nil
}
