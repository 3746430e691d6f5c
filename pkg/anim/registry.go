package anim

// QueueMode 是 PlayQueued 的排队策略。
// 仅为保留 API 形状而定义：PlayQueued 本身尚未实现。
type QueueMode int

const (
	// QueueCompleteOthers 等待其他动画播完后再播放
	QueueCompleteOthers QueueMode = iota
	// QueuePlayNow 立即播放
	QueuePlayNow
)

// entry 是注册表内部的一条记录：状态与驱动它的播放器成对出现。
type entry struct {
	name   string
	state  *State
	player *Player
}

// Registry 按名称管理一组动画状态（原设计中的 Animation 控制器）。
//
// 内部是一个只追加的 entry 仓库加名称→下标索引：名称唯一、后写覆盖
// （重注册替换原位置的状态对象），迭代顺序跟随注册顺序，查找 O(1)。
// 不支持移除，状态与注册表同生命周期。
//
// 多个状态可以同时处于启用态；Play 只启用目标状态，从不停用其他状态。
type Registry struct {
	hooks   Hooks
	entries []*entry
	index   map[string]int

	// defaultName 默认剪辑名：Play/PlayDefault 省略名称时使用，
	// 可显式设置，也可由资源装载阶段根据默认剪辑标识推断
	defaultName string

	// defaultWrap 新建状态的包裹模式（来自配置的 default_wrap_mode）
	defaultWrap WrapMode
}

// NewRegistry 创建注册表。hooks 会透传给每个状态的 Player，可为 nil。
func NewRegistry(hooks Hooks) *Registry {
	return &Registry{
		hooks:       hooks,
		index:       make(map[string]int),
		defaultWrap: WrapLoop,
	}
}

// SetDefaultWrapMode 设置后续注册的状态使用的包裹模式。
// 已注册状态不受影响。
func (r *Registry) SetDefaultWrapMode(mode WrapMode) {
	r.defaultWrap = mode
}

// SetDefaultClip 设置默认剪辑名。
func (r *Registry) SetDefaultClip(name string) {
	r.defaultName = name
}

// DefaultClip 返回默认剪辑名，未设置时为空字符串。
func (r *Registry) DefaultClip() string {
	return r.defaultName
}

// AddClip 以 name 注册或替换一个剪辑状态。
//
// name 为空或 clip 为 nil 时静默忽略（刻意弱于 InvalidArgument，
// 与原始行为一致）。重复注册同名剪辑时原位置的状态对象被整体替换，
// 之前的播放进度随之丢弃。
func (r *Registry) AddClip(clip *Clip, name string) {
	if name == "" || clip == nil {
		return
	}

	e := &entry{
		name:   name,
		state:  newState(clip, r.defaultWrap),
		player: NewPlayer(r.hooks),
	}

	if pos, exists := r.index[name]; exists {
		r.entries[pos] = e
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, e)
}

// AddClipRange 注册 clip 的 [firstFrame, lastFrame] 子区间视图。
// 子剪辑与父剪辑共享轨道数据。
//
// addLoopFrame 被接受但无效果 —— 在末尾追加一帧与首帧相同的关键帧
// 尚未实现，这里保留为 no-op 而不是悄悄改变语义。
func (r *Registry) AddClipRange(clip *Clip, name string, firstFrame, lastFrame int, addLoopFrame bool) {
	if name == "" || clip == nil {
		return
	}
	_ = addLoopFrame
	r.AddClip(NewSubClip(clip, name, firstFrame, lastFrame), name)
}

// GetClip 按名称返回剪辑，未注册返回 nil（从不报错）。
func (r *Registry) GetClip(name string) *Clip {
	if e := r.lookup(name); e != nil {
		return e.state.Clip
	}
	return nil
}

// State 按名称返回播放状态，未注册返回 nil。
func (r *Registry) State(name string) *State {
	if e := r.lookup(name); e != nil {
		return e.state
	}
	return nil
}

// PlayerFor 按名称返回状态对应的播放器，未注册返回 nil。
// 用于外部 seek（Player.SetTime）和测试。
func (r *Registry) PlayerFor(name string) *Player {
	if e := r.lookup(name); e != nil {
		return e.player
	}
	return nil
}

// Play 启用名为 name 的状态。
//
// name 为空或未注册时返回 false 且无任何副作用。首次播放时通过
// Player.Start 初始化游标和长度；此后 Play 只重新启用状态，不会
// 重置播放进度（Stop/Play 即暂停/恢复）。
//
// Play 不会停用其他状态，多个剪辑可以同时播放。
func (r *Registry) Play(name string) bool {
	e := r.lookup(name)
	if e == nil {
		return false
	}

	if e.player.Clip() == nil {
		// AddClip 已拒绝 nil 剪辑，这里的 Start 不会失败
		if err := e.player.Start(e.state.Clip, e.state); err != nil {
			return false
		}
		return true
	}

	e.state.Enabled = true
	return true
}

// PlayDefault 播放默认剪辑。未设置默认剪辑时返回 false。
func (r *Registry) PlayDefault() bool {
	return r.Play(r.defaultName)
}

// Stop 停用名为 name 的状态，未注册时为 no-op。
// 游标和时间保持不变，下次 Play 从当前位置继续。
func (r *Registry) Stop(name string) {
	if e := r.lookup(name); e != nil {
		e.state.Enabled = false
	}
}

// StopAll 停用所有已注册状态。
func (r *Registry) StopAll() {
	for _, e := range r.entries {
		e.state.Enabled = false
	}
}

// Blend 混合播放 —— 已记录在案的桩实现：停用所有状态后播放 name。
// weight 和 length 被接受但不参与任何插值（真正的加权混合不在范围内，
// 保留 stop-then-play 行为，不要发明混合语义）。
func (r *Registry) Blend(name string, weight, length float64) bool {
	_, _ = weight, length
	if r.lookup(name) == nil {
		return false
	}
	r.StopAll()
	return r.Play(name)
}

// CrossFade 交叉淡入 —— 同 Blend，桩实现：停用所有状态后播放 name。
// fadeLength 被接受但不生效。
func (r *Registry) CrossFade(name string, fadeLength float64) bool {
	_ = fadeLength
	if r.lookup(name) == nil {
		return false
	}
	r.StopAll()
	return r.Play(name)
}

// IsPlaying 返回名为 name 的状态是否处于启用态，未注册返回 false。
func (r *Registry) IsPlaying(name string) bool {
	if e := r.lookup(name); e != nil {
		return e.state.Enabled
	}
	return false
}

// IsPlayingAny 返回是否有任意状态处于启用态。
func (r *Registry) IsPlayingAny() bool {
	for _, e := range r.entries {
		if e.state.Enabled {
			return true
		}
	}
	return false
}

// ClipCount 返回已注册状态数量。
func (r *Registry) ClipCount() int {
	return len(r.entries)
}

// States 按注册顺序返回所有播放状态。
// 返回的切片是新分配的，可以安全地反复迭代。
func (r *Registry) States() []*State {
	out := make([]*State, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.state
	}
	return out
}

// Rewind 未实现。显式返回 ErrNotImplemented 而不是静默 no-op，
// 让调用方能探测该能力缺失。
func (r *Registry) Rewind() error {
	return ErrNotImplemented
}

// PlayQueued 未实现，同 Rewind。
func (r *Registry) PlayQueued(name string, mode QueueMode) error {
	_, _ = name, mode
	return ErrNotImplemented
}

// Update 把帧间隔转发给每个已注册状态的播放器（按注册顺序）。
// 播放器自行跳过未启用的状态。第一个硬错误（如未指定的包裹模式）
// 中止本次遍历并向上传播。
func (r *Registry) Update(delta float64) error {
	for _, e := range r.entries {
		if err := e.player.Update(delta); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) lookup(name string) *entry {
	if name == "" {
		return nil
	}
	pos, exists := r.index[name]
	if !exists {
		return nil
	}
	return r.entries[pos]
}
