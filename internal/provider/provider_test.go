// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

// testAccProtoV6ProviderFactories are used to instantiate a provider during
// acceptance testing. The factory function will be invoked for every Terraform
// CLI command executed to create a provider server to which the CLI can
// reattach.
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"fire": providerserver.NewProtocol6WithError(New("test")()),
}

func testAccPreCheck(t *testing.T) {
	if os.Getenv("FIRE_API_KEY") == "" {
		t.Skip("FIRE_API_KEY must be set for acceptance tests")
	}
}

func TestAccServicesDataSource(t *testing.T) {
	if os.Getenv("TF_ACC") == "" {
		t.Skip("set TF_ACC to run acceptance tests")
	}

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: `data "fire_services" "all" {}`,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttrSet("data.fire_services.all", "services.#"),
				),
			},
		},
	})
}

func TestAccKVMStatusDataSource(t *testing.T) {
	if os.Getenv("TF_ACC") == "" {
		t.Skip("set TF_ACC to run acceptance tests")
	}
	name := os.Getenv("FIRE_TEST_KVM")
	if name == "" {
		t.Skip("set FIRE_TEST_KVM to a KVM service name to run this test")
	}

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: `data "fire_kvm_status" "vm" { name = "` + name + `" }`,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttrSet("data.fire_kvm_status.vm", "internal_id"),
					resource.TestCheckResourceAttrSet("data.fire_kvm_status.vm", "state"),
				),
			},
		},
	})
}

func TestAccDNSRecordResource(t *testing.T) {
	if os.Getenv("TF_ACC") == "" {
		t.Skip("set TF_ACC to run acceptance tests")
	}
	domain := os.Getenv("FIRE_TEST_DOMAIN")
	if domain == "" {
		t.Skip("set FIRE_TEST_DOMAIN to a domain service name to run this test")
	}

	config := func(data string) string {
		return `resource "fire_dns_record" "test" {
  domain = "` + domain + `"
  type   = "TXT"
  name   = "acc-test"
  data   = "` + data + `"
}`
	}

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: config("hello"),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttrSet("fire_dns_record.test", "id"),
					resource.TestCheckResourceAttr("fire_dns_record.test", "data", "hello"),
				),
			},
			{
				Config: config("updated"),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("fire_dns_record.test", "data", "updated"),
				),
			},
		},
	})
}
