package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 是后台管理员账号，由部署环境变量引导创建。
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// EnsureUser 引导后台管理员账号：用户名或密码为空时不做任何事；账号不存在则
// 以 bcrypt 哈希创建；账号已存在但环境变量里的密码已轮换时更新哈希。
func EnsureUser(username, password string) error {
	name := strings.TrimSpace(username)
	plain := strings.TrimSpace(password)
	if name == "" || plain == "" {
		return nil
	}
	if DB == nil {
		return errors.New("database not initialized")
	}

	var user User
	err := DB.Where("username = ?", name).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		return DB.Create(&User{Username: name, Password: string(hashed)}).Error
	case err != nil:
		return err
	}

	// 密码轮换：环境变量是唯一事实来源，哈希不匹配时跟进更新。
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plain)) == nil {
		return nil
	}
	hashed, hashErr := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if hashErr != nil {
		return hashErr
	}
	user.Password = string(hashed)
	return DB.Save(&user).Error
}
