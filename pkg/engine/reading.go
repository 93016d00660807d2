package engine

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

func (e *Engine) createDevice(input *models.Device) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	device := models.Device{
		SiteID:     input.SiteID,
		Name:       input.Name,
		Type:       input.Type,
		CapacityKW: input.CapacityKW,
		Settings:   input.Settings,
	}

	logger.Info("Received device registration", zap.Reflect("device", device))

	if err := e.Db.Conn.Create(&device).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered device", zap.Reflect("device", device))
	return &device, nil
}

func (e *Engine) getDevice(deviceID uint) (*models.Device, error) {
	var device models.Device
	err := e.Db.Conn.First(&device, deviceID).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (e *Engine) ingestReading(deviceID uint, input *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	if _, err := e.getDevice(deviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("device not registered")
		}
		return err
	}

	reading := models.Reading{
		DeviceID:      deviceID,
		Timestamp:     input.Timestamp,
		StateOfCharge: input.StateOfCharge,
		Temperature:   input.Temperature,
		PowerKW:       input.PowerKW,
		Voltage:       input.Voltage,
		Current:       input.Current,
	}

	logger.Info("Received reading for device", zap.Reflect("reading", reading))

	if err := e.Db.Conn.Create(&reading).Error; err != nil {
		return err
	}

	logger.Info("Stored reading for device", zap.Reflect("reading", reading))
	return nil
}

func (e *Engine) getLatestReading(deviceID uint) (*models.Reading, error) {
	var reading models.Reading
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		First(&reading).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (e *Engine) getRecentReadings(deviceID uint, limit int) ([]models.Reading, error) {
	var readings []models.Reading
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Limit(limit).
		Find(&readings).Error
	return readings, err
}

type IRegistryImpl struct {
	engine *Engine
}

func (ir *IRegistryImpl) CreateDevice(input *models.Device) (*models.Device, error) {
	return ir.engine.createDevice(input)
}

func (ir *IRegistryImpl) GetDevice(deviceID uint) (*models.Device, error) {
	return ir.engine.getDevice(deviceID)
}

func (e *Engine) GetIRegistry() IRegistry {
	return &IRegistryImpl{engine: e}
}

type IReadingImpl struct {
	engine *Engine
}

func (ir *IReadingImpl) IngestReading(deviceID uint, input *models.Reading) error {
	return ir.engine.ingestReading(deviceID, input)
}

func (ir *IReadingImpl) GetLatestReading(deviceID uint) (*models.Reading, error) {
	return ir.engine.getLatestReading(deviceID)
}

func (ir *IReadingImpl) GetRecentReadings(deviceID uint, limit int) ([]models.Reading, error) {
	return ir.engine.getRecentReadings(deviceID, limit)
}

func (e *Engine) GetIReading() IReading {
	return &IReadingImpl{engine: e}
}
