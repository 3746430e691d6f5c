// Package game 提供动画子系统的宿主装配件：剪辑库（资源装载边界）
// 和运行时设置持久化。
package game

import (
	"fmt"
	"log"

	"github.com/decker502/animkit/internal/keyframe"
	"github.com/decker502/animkit/pkg/anim"
)

// ClipLibrary 是资源装载边界的实现：按不透明的数字标识查找剪辑。
// 库内容来自剪辑库 YAML 文件，装载后只读。
type ClipLibrary struct {
	lib    *keyframe.LibraryFile
	tracks map[int]*keyframe.Track
}

// LoadClipLibrary 从文件加载剪辑库。
func LoadClipLibrary(path string) (*ClipLibrary, error) {
	lib, err := keyframe.ParseLibraryFile(path)
	if err != nil {
		return nil, fmt.Errorf("clip library load failed: %w", err)
	}
	log.Printf("[ClipLibrary] Loaded %d clips from '%s'", len(lib.Clips), path)
	return NewClipLibrary(lib), nil
}

// NewClipLibrary 用已解析的库数据构建剪辑库。
// 轨道按标识缓存，同一标识的多次 GetClip 共享同一条轨道。
func NewClipLibrary(lib *keyframe.LibraryFile) *ClipLibrary {
	return &ClipLibrary{
		lib:    lib,
		tracks: make(map[int]*keyframe.Track),
	}
}

// ClipCount 返回库中的剪辑数量。
func (l *ClipLibrary) ClipCount() int {
	return len(l.lib.Clips)
}

// ClipName 返回标识对应的剪辑名，未找到返回空字符串。
func (l *ClipLibrary) ClipName(id int) string {
	if def, ok := l.lib.Clips[id]; ok {
		return def.Name
	}
	return ""
}

// GetClip 按标识构建剪辑，未找到返回 nil（软失败，从不报错）。
func (l *ClipLibrary) GetClip(id int) *anim.Clip {
	def, ok := l.lib.Clips[id]
	if !ok {
		return nil
	}

	track, cached := l.tracks[id]
	if !cached {
		track = def.BuildTrack()
		l.tracks[id] = track
	}
	return anim.NewClip(def.Name, track)
}

// PopulateRegistry 遍历标识列表，把每个成功装载的剪辑按名称注册到
// 注册表，并把命中 defaultID 的剪辑标记为默认剪辑。
// 未知标识记录告警后跳过。返回成功注册的剪辑数。
func (l *ClipLibrary) PopulateRegistry(r *anim.Registry, ids []int, defaultID int) int {
	registered := 0
	for _, id := range ids {
		clip := l.GetClip(id)
		if clip == nil {
			log.Printf("[ClipLibrary] Warning: clip id %d not found, skipping", id)
			continue
		}

		r.AddClip(clip, clip.Name)
		registered++

		if id == defaultID {
			r.SetDefaultClip(clip.Name)
			log.Printf("[ClipLibrary] Default clip: '%s' (id %d)", clip.Name, id)
		}
	}
	log.Printf("[ClipLibrary] Registered %d/%d clips", registered, len(ids))
	return registered
}
