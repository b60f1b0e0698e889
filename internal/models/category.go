package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// JSON 类型定义，用于存储元数据与地址
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, j)
}

// StringArray 字符串数组类型
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, s)
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}

// Category 商品分类表
type Category struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"` // 主键
	Handle    string         `gorm:"uniqueIndex;not null" json:"handle"`    // 唯一标识
	Name      string         `gorm:"not null" json:"name"`                  // 名称
	ParentID  *string        `gorm:"index" json:"parent_id,omitempty"`      // 父分类ID
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "product_categories"
}

// BeforeCreate 生成ID
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID, constants.IDPrefixCategory)
	return nil
}

// Collection 商品合集表
type Collection struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"` // 主键
	Handle    string         `gorm:"uniqueIndex;not null" json:"handle"`    // 唯一标识
	Title     string         `gorm:"not null" json:"title"`                 // 标题
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (Collection) TableName() string {
	return "product_collections"
}

// BeforeCreate 生成ID
func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID, constants.IDPrefixCollection)
	return nil
}
