package util

import (
	"fmt"
	"io"
	"net/http"
)

// GetSafeContentType 读取文件头部做服务端嗅探，不信任客户端声明的类型
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("读取文件头失败: %w", err)
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("重置读取位置失败: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}
