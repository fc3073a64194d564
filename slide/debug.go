package slide

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将排版后的帧输出为 JSON，便于调试或可视化。
func WriteDebugJSON(frames []Frame, path string) error {
	if len(frames) == 0 {
		return nil
	}
	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
