package schemafile

type defaultSettingKey uint

const (
	DATASET    defaultSettingKey = 0x0
	SCHEMANAME defaultSettingKey = 0x1
	KIND       defaultSettingKey = 0x2
)

var defaultSettings = map[defaultSettingKey]interface{}{
	DATASET:    "default",
	SCHEMANAME: "video",
	KIND:       "tensor",
}
