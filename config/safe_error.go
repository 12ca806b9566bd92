package config

// SafeErrorMessage 根据运行模式决定是否向客户端暴露错误详情。
// release 模式下返回兜底文案，避免泄露内部实现；
// debug 模式（或配置未初始化的开发场景）返回原始错误信息。
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
