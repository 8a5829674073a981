package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/nuclio/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	reader *Reader
	env    map[string]string
}

func (suite *ConfigTestSuite) SetupTest() {
	var err error
	suite.reader, err = NewReader()
	suite.Require().NoError(err)

	suite.env = map[string]string{}
	suite.reader.getenv = func(key string) string {
		return suite.env[key]
	}
}

func (suite *ConfigTestSuite) TestRead() {
	config := suite.reader.GetDefaultConfiguration()
	err := suite.reader.Read(strings.NewReader(`
codec: runlength
overwrite: true
concurrency: 3
`), config)
	suite.Require().NoError(err)

	suite.Require().Equal(&Config{
		Codec:       "runlength",
		Overwrite:   true,
		Concurrency: 3,
	}, config)
}

func (suite *ConfigTestSuite) TestReadInvalidYAML() {
	err := suite.reader.Read(strings.NewReader("codec: ["), &Config{})
	suite.Require().Error(err)
}

func (suite *ConfigTestSuite) TestReadFileOrDefaultMissingFile() {
	config, err := suite.reader.ReadFileOrDefault(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Require().NoError(err)
	suite.Require().Equal(suite.reader.GetDefaultConfiguration(), config)
	suite.Require().NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestReadFileOrDefaultKeepsUnsetDefaults() {
	path := filepath.Join(suite.T().TempDir(), "bytecodec.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("codec: hex\n"), 0644))

	config, err := suite.reader.ReadFileOrDefault(path)
	suite.Require().NoError(err)
	suite.Require().Equal("hex", config.Codec)
	suite.Require().Equal(suite.reader.GetDefaultConfiguration().Concurrency, config.Concurrency)
}

func (suite *ConfigTestSuite) TestEnvironmentOverrides() {
	path := filepath.Join(suite.T().TempDir(), "bytecodec.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("codec: hex\nconcurrency: 8\n"), 0644))

	suite.env[EnvCodec] = "runlength"
	suite.env[EnvConcurrency] = "2"
	suite.env[EnvOverwrite] = "true"

	config, err := suite.reader.ReadFileOrDefault(path)
	suite.Require().NoError(err)
	suite.Require().Equal(&Config{Codec: "runlength", Concurrency: 2, Overwrite: true}, config)
}

func (suite *ConfigTestSuite) TestInvalidEnvironment() {
	suite.env[EnvConcurrency] = "many"

	_, err := suite.reader.ReadFileOrDefault(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Require().Error(err)
}

func (suite *ConfigTestSuite) TestValidate() {
	for _, testCase := range []struct {
		name        string
		config      Config
		expectError bool
	}{
		{name: "valid", config: Config{Codec: "huffman", Concurrency: 1}},
		{name: "missing codec", config: Config{Concurrency: 1}, expectError: true},
		{name: "zero concurrency", config: Config{Codec: "huffman"}, expectError: true},
	} {
		suite.Run(testCase.name, func() {
			err := testCase.config.Validate()
			if !testCase.expectError {
				suite.Require().NoError(err)
				return
			}
			suite.Require().Equal(codec.ErrInvalidParameter, errors.RootCause(err))
		})
	}
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
